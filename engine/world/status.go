package world

import (
	"fmt"

	"github.com/1siamBot/nachenblaster/engine/actors"
	"github.com/1siamBot/nachenblaster/engine/core"
)

// FormatStatus renders the one-line status shown above the playfield
func FormatStatus(board core.Scoreboard, ship *actors.Ship) string {
	health, energy, torpedoes := 0.0, 0.0, 0
	if ship != nil {
		health = ship.HealthPercent()
		energy = ship.EnergyPercent()
		torpedoes = ship.Torpedoes()
	}
	return fmt.Sprintf("Lives: %d  Health: %.0f%%  Score: %d  Level: %d  Energy: %.0f%%  Torpedoes: %d",
		board.Lives(), health, board.Score(), board.Level(), energy, torpedoes)
}

func (m *Manager) publishStatus() {
	m.statusLine = FormatStatus(m.board, m.ship)
	m.status.PublishStatus(m.statusLine)
}
