package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/1siamBot/nachenblaster/engine/core"
)

// toneRecipe describes one synthesized effect: a sine sweep with a linear
// decay, optionally followed by a short melody
type toneRecipe struct {
	from, to float64 // Hz
	duration time.Duration
	gain     float64
	noise    float64 // share of white noise mixed in, 0..1
	melody   []float64
}

var recipes = map[core.Effect]toneRecipe{
	core.EffectPlayerShoot:   {from: 1400, to: 600, duration: 80 * time.Millisecond, gain: 0.25},
	core.EffectTorpedo:       {from: 300, to: 90, duration: 250 * time.Millisecond, gain: 0.35, noise: 0.2},
	core.EffectAlienShoot:    {from: 500, to: 900, duration: 90 * time.Millisecond, gain: 0.2},
	core.EffectBlast:         {from: 180, to: 120, duration: 70 * time.Millisecond, gain: 0.3, noise: 0.5},
	core.EffectDeath:         {from: 220, to: 40, duration: 350 * time.Millisecond, gain: 0.4, noise: 0.7},
	core.EffectGoodie:        {from: 660, to: 990, duration: 120 * time.Millisecond, gain: 0.25},
	core.EffectFinishedLevel: {from: 523, to: 523, duration: 120 * time.Millisecond, gain: 0.3, melody: []float64{659, 784, 1047}},
}

const noteLength = 120 * time.Millisecond

// sweep is a decaying sine whose pitch slides from one frequency to another
type sweep struct {
	sr       beep.SampleRate
	pos      int
	total    int
	from, to float64
	gain     float64
	noise    float64
	phase    float64
	seed     uint32
}

func newSweep(sr beep.SampleRate, r toneRecipe) *sweep {
	return &sweep{
		sr:    sr,
		total: sr.N(r.duration),
		from:  r.from,
		to:    r.to,
		gain:  r.gain,
		noise: r.noise,
		seed:  0x2545f491,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}

		v := math.Sin(s.phase)
		if s.noise > 0 {
			v = v*(1-s.noise) + s.white()*s.noise
		}
		v *= s.gain * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// white returns cheap deterministic noise in [-1, 1] (xorshift32)
func (s *sweep) white() float64 {
	s.seed ^= s.seed << 13
	s.seed ^= s.seed >> 17
	s.seed ^= s.seed << 5
	return float64(s.seed)/float64(math.MaxUint32)*2 - 1
}

// buildStreamer renders the effect at volume vol (0..1)
func buildStreamer(sr beep.SampleRate, e core.Effect, vol float64) (beep.Streamer, bool) {
	r, ok := recipes[e]
	if !ok {
		return nil, false
	}
	parts := []beep.Streamer{newSweep(sr, r)}
	for _, freq := range r.melody {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sr.N(noteLength), newVolume(tone, r.gain)))
	}
	return newVolume(beep.Seq(parts...), vol), true
}

// newVolume scales s linearly; effects.Volume works in log2 steps and
// needs Silent for zero
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
