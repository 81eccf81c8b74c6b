package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-house-rules/internal/domain/club"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/houserule"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/player"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// OwnerSource selects where a team's owner name comes from.
type OwnerSource string

const (
	// OwnerSourceConfig uses the configured owner name, falling back to the entry.
	OwnerSourceConfig OwnerSource = "config"
	// OwnerSourceEntry always uses the entry document's first name.
	OwnerSourceEntry OwnerSource = "entry"
)

// TeamTarget is one fantasy entry to check. Owner may be empty.
type TeamTarget struct {
	TeamID int64
	Owner  string
}

type TeamReport struct {
	TeamID     int64
	TeamName   string
	Owner      string
	Gameweek   int64
	Captain    player.Player
	Violations []houserule.ValidationResult
}

// Report is the outcome of one checking run. Violations concatenates the
// per-team violations in input order.
type Report struct {
	Gameweek   int64
	Teams      []TeamReport
	Violations []houserule.ValidationResult
}

func (r Report) Reasons() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Reason)
	}
	return out
}

type HouseRuleService struct {
	provider    fpl.Provider
	rules       houserule.Rules
	registry    []TeamTarget
	ownerSource OwnerSource
	logger      *logging.Logger
}

func NewHouseRuleService(
	provider fpl.Provider,
	rules houserule.Rules,
	registry []TeamTarget,
	ownerSource OwnerSource,
	logger *logging.Logger,
) *HouseRuleService {
	if logger == nil {
		logger = logging.Default()
	}
	if ownerSource == "" {
		ownerSource = OwnerSourceConfig
	}

	return &HouseRuleService{
		provider:    provider,
		rules:       rules,
		registry:    append([]TeamTarget(nil), registry...),
		ownerSource: ownerSource,
		logger:      logger,
	}
}

// CheckLeague checks every team in the configured registry.
func (s *HouseRuleService) CheckLeague(ctx context.Context) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HouseRuleService.CheckLeague")
	defer span.End()

	if len(s.registry) == 0 {
		return Report{}, fmt.Errorf("%w: no league teams configured", ErrInvalidInput)
	}
	return s.CheckTeams(ctx, s.registry)
}

// CheckTeams fetches the bootstrap snapshot once and then checks each team
// sequentially in input order. Any fetch or integrity failure aborts the run.
func (s *HouseRuleService) CheckTeams(ctx context.Context, targets []TeamTarget) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HouseRuleService.CheckTeams", attribute.Int("teams", len(targets)))
	defer span.End()

	if len(targets) == 0 {
		return Report{}, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	for _, target := range targets {
		if target.TeamID <= 0 {
			return Report{}, fmt.Errorf("%w: team id must be greater than zero, got %d", ErrInvalidInput, target.TeamID)
		}
	}

	bootstrap, err := s.provider.FetchBootstrap(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	clubs := BuildClubIndex(bootstrap)
	players, err := BuildPlayerIndex(clubs, bootstrap)
	if err != nil {
		return Report{}, fmt.Errorf("build player index: %w", err)
	}
	if err := ensureClubsIndexed(clubs, s.rules.NewlyPromotedClubIDs); err != nil {
		return Report{}, err
	}

	gameweek, _ := CurrentGameweek(bootstrap)
	report := Report{
		Gameweek: gameweek,
		Teams:    make([]TeamReport, 0, len(targets)),
	}

	for _, target := range targets {
		teamReport, err := s.checkTeam(ctx, target, gameweek, clubs, players)
		if err != nil {
			return Report{}, err
		}
		report.Teams = append(report.Teams, teamReport)
		report.Violations = append(report.Violations, teamReport.Violations...)
	}

	s.logger.InfoContext(ctx, "house rules checked",
		"teams", len(report.Teams),
		"gameweek", report.Gameweek,
		"violations", len(report.Violations),
	)

	return report, nil
}

func (s *HouseRuleService) checkTeam(
	ctx context.Context,
	target TeamTarget,
	bootstrapGameweek int64,
	clubs map[int64]club.Club,
	players map[int64]player.Player,
) (TeamReport, error) {
	entry, err := s.provider.FetchEntry(ctx, target.TeamID)
	if err != nil {
		return TeamReport{}, fmt.Errorf("fetch entry team_id=%d: %w", target.TeamID, err)
	}

	gameweek := entry.CurrentEvent
	if gameweek <= 0 {
		gameweek = bootstrapGameweek
	}
	if gameweek <= 0 {
		return TeamReport{}, fmt.Errorf("%w: cannot determine current gameweek for team_id=%d", ErrMalformedDocument, target.TeamID)
	}

	picks, err := s.provider.FetchPicks(ctx, target.TeamID, gameweek)
	if err != nil {
		return TeamReport{}, fmt.Errorf("fetch picks team_id=%d gameweek=%d: %w", target.TeamID, gameweek, err)
	}

	owner := strings.TrimSpace(target.Owner)
	if s.ownerSource == OwnerSourceEntry {
		owner = ""
	}

	assembled, err := AssembleTeam(target.TeamID, owner, players, entry, picks)
	if err != nil {
		return TeamReport{}, err
	}

	violations := houserule.Evaluate(assembled, clubs, s.rules)
	s.logger.DebugContext(ctx, "team evaluated",
		"team_id", assembled.ID,
		"team_name", assembled.Name,
		"owner", assembled.Owner,
		"gameweek", gameweek,
		"players", len(assembled.Players),
		"violations", len(violations),
	)

	return TeamReport{
		TeamID:     assembled.ID,
		TeamName:   assembled.Name,
		Owner:      assembled.Owner,
		Gameweek:   gameweek,
		Captain:    assembled.Captain,
		Violations: violations,
	}, nil
}
