package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	fplmock "github.com/riskibarqy/fpl-house-rules/internal/mocks/domain/fpl"
	"github.com/stretchr/testify/mock"
)

func TestHouseRuleService_CheckTeams_CollectsViolationsInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := fplmock.NewProvider(t)
	service := NewHouseRuleService(provider, deterministicRules(), nil, OwnerSourceConfig, logging.NewNop())

	provider.On("FetchBootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	provider.On("FetchEntry", mock.Anything, int64(2239760)).
		Return(fpl.EntryDocument{ID: 2239760, Name: "Pedro Cask Ale", PlayerFirstName: "Jacob", CurrentEvent: 7}, nil).
		Once()
	provider.On("FetchPicks", mock.Anything, int64(2239760), int64(7)).
		Return(picksOf(430, 430, 82, 371, 249), nil).
		Once()
	provider.On("FetchEntry", mock.Anything, int64(5005)).
		Return(fpl.EntryDocument{ID: 5005, Name: "Rufo FC", PlayerFirstName: "Javier"}, nil).
		Once()
	provider.On("FetchPicks", mock.Anything, int64(5005), int64(7)).
		Return(picksOf(5, 82, 371, 670, 5, 249), nil).
		Once()

	report, err := service.CheckTeams(ctx, []TeamTarget{
		{TeamID: 2239760, Owner: "Jake"},
		{TeamID: 5005},
	})
	if err != nil {
		t.Fatalf("check teams: %v", err)
	}

	if report.Gameweek != 7 {
		t.Fatalf("unexpected gameweek: %d", report.Gameweek)
	}
	want := []string{
		"Big wompers! Jake has gone overbudget with Haaland (14m)",
		"Yikes! Jake has not included players from Sunderland. That's gonna sting",
	}
	got := report.Reasons()
	if len(got) != len(want) {
		t.Fatalf("unexpected violation count: got=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("violation %d:\n got=%q\nwant=%q", i, got[i], want[i])
		}
	}

	if len(report.Teams) != 2 {
		t.Fatalf("unexpected team report count: %d", len(report.Teams))
	}
	if report.Teams[1].Owner != "Javier" || len(report.Teams[1].Violations) != 0 {
		t.Fatalf("unexpected second team report: %+v", report.Teams[1])
	}
	if report.Teams[0].Captain.Name != "Haaland" {
		t.Fatalf("unexpected captain: %+v", report.Teams[0].Captain)
	}
}

func TestHouseRuleService_CheckTeams_OwnerFromEntry(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	service := NewHouseRuleService(provider, deterministicRules(), nil, OwnerSourceEntry, logging.NewNop())

	provider.On("FetchBootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	provider.On("FetchEntry", mock.Anything, int64(9)).
		Return(fpl.EntryDocument{ID: 9, Name: "Nine", PlayerFirstName: "Sam", CurrentEvent: 7}, nil).
		Once()
	provider.On("FetchPicks", mock.Anything, int64(9), int64(7)).
		Return(picksOf(0, 82, 371), nil).
		Once()

	report, err := service.CheckTeams(context.Background(), []TeamTarget{{TeamID: 9, Owner: "Configured"}})
	if err != nil {
		t.Fatalf("check teams: %v", err)
	}
	want := "Yikes! Sam has not included players from Sunderland. That's gonna sting"
	if got := report.Reasons(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected reasons: %v", got)
	}
}

func TestHouseRuleService_CheckTeams_AbortsOnProviderError(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	service := NewHouseRuleService(provider, deterministicRules(), nil, OwnerSourceConfig, logging.NewNop())

	provider.On("FetchBootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	provider.On("FetchEntry", mock.Anything, int64(1)).
		Return(fpl.EntryDocument{}, ErrNotFound).
		Once()

	_, err := service.CheckTeams(context.Background(), []TeamTarget{{TeamID: 1}, {TeamID: 2}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	provider.AssertNotCalled(t, "FetchEntry", mock.Anything, int64(2))
}

func TestHouseRuleService_CheckTeams_MissingGameweek(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	service := NewHouseRuleService(provider, deterministicRules(), nil, OwnerSourceConfig, logging.NewNop())

	doc := sampleBootstrap()
	doc.Events = nil
	provider.On("FetchBootstrap", mock.Anything).Return(doc, nil).Once()
	provider.On("FetchEntry", mock.Anything, int64(1)).Return(fpl.EntryDocument{ID: 1}, nil).Once()

	_, err := service.CheckTeams(context.Background(), []TeamTarget{{TeamID: 1}})
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestHouseRuleService_CheckTeams_UnknownPromotedClub(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	rules := deterministicRules()
	rules.NewlyPromotedClubIDs = []int64{3, 404}
	service := NewHouseRuleService(provider, rules, nil, OwnerSourceConfig, logging.NewNop())

	provider.On("FetchBootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()

	_, err := service.CheckTeams(context.Background(), []TeamTarget{{TeamID: 1}})
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestHouseRuleService_InvalidInput(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	service := NewHouseRuleService(provider, deterministicRules(), nil, OwnerSourceConfig, logging.NewNop())

	if _, err := service.CheckLeague(context.Background()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty registry, got %v", err)
	}
	if _, err := service.CheckTeams(context.Background(), []TeamTarget{{TeamID: 0}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero team id, got %v", err)
	}
}

func TestHouseRuleService_CheckLeague_UsesRegistry(t *testing.T) {
	t.Parallel()

	provider := fplmock.NewProvider(t)
	registry := []TeamTarget{{TeamID: 5005, Owner: "Javier Rufo"}}
	service := NewHouseRuleService(provider, deterministicRules(), registry, OwnerSourceConfig, logging.NewNop())

	provider.On("FetchBootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	provider.On("FetchEntry", mock.Anything, int64(5005)).
		Return(fpl.EntryDocument{ID: 5005, Name: "Rufo FC", CurrentEvent: 7}, nil).
		Once()
	provider.On("FetchPicks", mock.Anything, int64(5005), int64(7)).
		Return(picksOf(0, 371, 670), nil).
		Once()

	report, err := service.CheckLeague(context.Background())
	if err != nil {
		t.Fatalf("check league: %v", err)
	}
	want := "Yikes! Javier Rufo has not included players from Burnley. That's gonna sting"
	if got := report.Reasons(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected reasons: %v", got)
	}
}
