package core

import "github.com/google/uuid"

// DefaultLives is the number of ships a new session starts with
const DefaultLives = 3

// Session tracks the player's progress across levels. It implements Scoreboard.
type Session struct {
	ID    string
	lives int
	score int
	level int
}

// NewSession starts a session at the given level with the given lives.
// Non-positive values fall back to level 1 and DefaultLives.
func NewSession(lives, level int) *Session {
	if lives <= 0 {
		lives = DefaultLives
	}
	if level <= 0 {
		level = 1
	}
	return &Session{
		ID:    uuid.NewString(),
		lives: lives,
		level: level,
	}
}

func (s *Session) Level() int { return s.level }
func (s *Session) Score() int { return s.score }
func (s *Session) Lives() int { return s.lives }

func (s *Session) AddScore(n int) { s.score += n }
func (s *Session) AddLife() { s.lives++ }

// LoseLife removes one ship, never going below zero
func (s *Session) LoseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

// NextLevel advances to the following level
func (s *Session) NextLevel() { s.level++ }

// GameOver returns true once every ship is lost
func (s *Session) GameOver() bool { return s.lives <= 0 }
