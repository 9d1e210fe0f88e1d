// Package audio synthesizes the game's sound effects with beep. Nothing is
// loaded from disk; every effect is a short generated tone.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays effects through the system speaker. Until Initialize
// succeeds it stays silent, so a machine without audio still runs the game.
type Manager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	masterVolume float64
	sfxVolume    float64
	initialized  bool
	log          *zap.Logger
}

var _ core.EffectPlayer = (*Manager)(nil)

// NewManager creates a silent manager with the given master volume
func NewManager(volume float64, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		mixer:     &beep.Mixer{},
		sfxVolume: 0.8,
		log:       logger,
	}
	m.SetVolume(volume)
	return m
}

// Initialize opens the speaker. Failure leaves the manager silent.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.log.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Enabled reports whether effects reach the speaker
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// PlayEffect queues an effect on the mixer and returns immediately
func (m *Manager) PlayEffect(e core.Effect) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, ok := buildStreamer(sampleRate, e, m.masterVolume*m.sfxVolume)
	if !ok {
		m.log.Warn("no recipe for effect", zap.Stringer("effect", e))
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume sets master volume (0-1)
func (m *Manager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.mu.Lock()
	m.masterVolume = v
	m.mu.Unlock()
}

// Volume returns the master volume
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.masterVolume
}

// Cleanup drops every playing effect
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
