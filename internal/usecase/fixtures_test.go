package usecase

import (
	"github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/houserule"
)

func sampleBootstrap() fpl.BootstrapDocument {
	return fpl.BootstrapDocument{
		Clubs: []fpl.BootstrapClub{
			{ID: 1, Name: "Arsenal"},
			{ID: 3, Name: "Burnley"},
			{ID: 7, Name: "Chelsea"},
			{ID: 11, Name: "Leeds"},
			{ID: 13, Name: "Man City"},
			{ID: 17, Name: "Sunderland"},
		},
		Elements: []fpl.BootstrapElement{
			{ID: 5, WebName: "Gabriel", NowCost: 61, Team: 1},
			{ID: 16, WebName: "Saliba", NowCost: 60, Team: 1},
			{ID: 82, WebName: "Anthony", NowCost: 55, Team: 3},
			{ID: 249, WebName: "Palmer", NowCost: 75, Team: 7},
			{ID: 371, WebName: "Calvert-Lewin", NowCost: 55, Team: 11},
			{ID: 430, WebName: "Haaland", NowCost: 140, Team: 13},
			{ID: 670, WebName: "Xhaka", NowCost: 50, Team: 17},
		},
		Events: []fpl.BootstrapEvent{
			{ID: 6, IsCurrent: false},
			{ID: 7, IsCurrent: true},
		},
	}
}

func picksOf(captain int64, elements ...int64) fpl.PicksDocument {
	out := fpl.PicksDocument{Picks: make([]fpl.Pick, 0, len(elements))}
	for i, element := range elements {
		out.Picks = append(out.Picks, fpl.Pick{
			Element:   element,
			Position:  i + 1,
			IsCaptain: element == captain,
		})
	}
	return out
}

func deterministicRules() houserule.Rules {
	return houserule.Rules{
		PriceCeiling:         houserule.DefaultPriceCeiling,
		NewlyPromotedClubIDs: []int64{3, 11, 17},
		OverBudgetPhrases:    []string{"Big wompers!"},
		PromotedPhrases:      []string{"Yikes!"},
		Picker:               houserule.FixedPicker{},
	}
}
