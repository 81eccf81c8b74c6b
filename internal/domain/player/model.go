package player

import "github.com/riskibarqy/fpl-house-rules/internal/domain/club"

// Player is a selectable footballer joined with the club they play for.
type Player struct {
	ID              int64
	Name            string
	PriceInMillions float64
	Club            club.Club
}

// PriceFromNowCost converts the upstream tenths-of-a-million price.
func PriceFromNowCost(nowCost int64) float64 {
	return float64(nowCost) / 10
}
