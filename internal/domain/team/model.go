package team

import "github.com/riskibarqy/fpl-house-rules/internal/domain/player"

// Team is one manager's fantasy entry for a gameweek. Players keep the
// order of the picks document.
type Team struct {
	ID      int64
	Name    string
	Owner   string
	Captain player.Player
	Players []player.Player
}

// HasCaptain reports whether a pick was flagged as captain.
func (t Team) HasCaptain() bool {
	return t.Captain.ID != 0
}
