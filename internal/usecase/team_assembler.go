package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/player"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/team"
)

// AssembleTeam joins an entry's picks against the player index.
//
// Players keep pick order. When several picks are flagged captain the last one
// wins; when none is flagged Captain stays the zero Player. An empty owner
// falls back to the entry's first name.
func AssembleTeam(
	teamID int64,
	owner string,
	players map[int64]player.Player,
	entry fpl.EntryDocument,
	picks fpl.PicksDocument,
) (team.Team, error) {
	out := team.Team{
		ID:      teamID,
		Name:    entry.Name,
		Owner:   strings.TrimSpace(owner),
		Players: make([]player.Player, 0, len(picks.Picks)),
	}
	if out.Owner == "" {
		out.Owner = entry.PlayerFirstName
	}

	for _, pick := range picks.Picks {
		item, ok := players[pick.Element]
		if !ok {
			return team.Team{}, fmt.Errorf("%w: team id=%d picked unknown player id=%d", ErrIntegrity, teamID, pick.Element)
		}
		if pick.IsCaptain {
			out.Captain = item
		}
		out.Players = append(out.Players, item)
	}

	return out, nil
}
