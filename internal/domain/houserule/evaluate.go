package houserule

import (
	"github.com/riskibarqy/fpl-house-rules/internal/domain/club"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/team"
	"github.com/valyala/bytebufferpool"
)

const (
	RuleIDPriceCeiling     = "price-ceiling"
	RuleIDNewlyPromoted    = "newly-promoted-clubs"
	RuleIDOnePlayerPerClub = "one-player-per-club"
)

// Rule is a named, side-effect free check over one team.
type Rule struct {
	ID    string
	Apply func(team.Team) ValidationResult
}

// Ordered returns the house rules in evaluation order.
func (r Rules) Ordered(clubs map[int64]club.Club) []Rule {
	return []Rule{
		{ID: RuleIDPriceCeiling, Apply: func(t team.Team) ValidationResult { return CheckPriceCeiling(t, r) }},
		{ID: RuleIDNewlyPromoted, Apply: func(t team.Team) ValidationResult { return CheckNewlyPromotedClubs(t, clubs, r) }},
		{ID: RuleIDOnePlayerPerClub, Apply: func(t team.Team) ValidationResult { return CheckOnePlayerPerClub(t, r) }},
	}
}

// Evaluate runs every rule and keeps only the violations.
func Evaluate(t team.Team, clubs map[int64]club.Club, rules Rules) []ValidationResult {
	ordered := rules.Ordered(clubs)
	out := make([]ValidationResult, 0, len(ordered))
	for _, rule := range ordered {
		if result := rule.Apply(t); !result.IsValid {
			out = append(out, result)
		}
	}
	return out
}

// JoinReasons concatenates violation reasons with sep between them.
func JoinReasons(results []ValidationResult, sep string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	written := 0
	for _, result := range results {
		if result.IsValid {
			continue
		}
		if written > 0 {
			_, _ = buf.WriteString(sep)
		}
		_, _ = buf.WriteString(result.Reason)
		written++
	}
	return buf.String()
}
