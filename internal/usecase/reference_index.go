package usecase

import (
	"fmt"

	"github.com/riskibarqy/fpl-house-rules/internal/domain/club"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/player"
)

// BuildClubIndex indexes bootstrap clubs by id. A repeated id keeps the last row.
func BuildClubIndex(doc fpl.BootstrapDocument) map[int64]club.Club {
	out := make(map[int64]club.Club, len(doc.Clubs))
	for _, item := range doc.Clubs {
		out[item.ID] = club.Club{ID: item.ID, Name: item.Name}
	}
	return out
}

// BuildPlayerIndex indexes bootstrap players by id with their club embedded.
func BuildPlayerIndex(clubs map[int64]club.Club, doc fpl.BootstrapDocument) (map[int64]player.Player, error) {
	out := make(map[int64]player.Player, len(doc.Elements))
	for _, item := range doc.Elements {
		c, ok := clubs[item.Team]
		if !ok {
			return nil, fmt.Errorf("%w: player id=%d name=%q references unknown club id=%d", ErrIntegrity, item.ID, item.WebName, item.Team)
		}

		out[item.ID] = player.Player{
			ID:              item.ID,
			Name:            item.WebName,
			PriceInMillions: player.PriceFromNowCost(item.NowCost),
			Club:            c,
		}
	}
	return out, nil
}

// CurrentGameweek returns the first event flagged as current.
func CurrentGameweek(doc fpl.BootstrapDocument) (int64, bool) {
	for _, event := range doc.Events {
		if event.IsCurrent {
			return event.ID, true
		}
	}
	return 0, false
}

// ensureClubsIndexed verifies configured club ids exist in the index.
func ensureClubsIndexed(clubs map[int64]club.Club, ids []int64) error {
	for _, id := range ids {
		if _, ok := clubs[id]; !ok {
			return fmt.Errorf("%w: configured newly promoted club id=%d is not in bootstrap data", ErrIntegrity, id)
		}
	}
	return nil
}
