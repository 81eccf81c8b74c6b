package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-house-rules/external/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/config"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/houserule"
	"github.com/riskibarqy/fpl-house-rules/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/resilience"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
)

// NewHouseRuleService wires the FPL client and league rules from config.
func NewHouseRuleService(cfg config.Config, logger *logging.Logger) *usecase.HouseRuleService {
	client := fpl.NewClient(fpl.ClientConfig{
		BaseURL:   cfg.FPLBaseURL,
		UserAgent: cfg.FPLUserAgent,
		Timeout:   cfg.FPLTimeout,
		Logger:    logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	return usecase.NewHouseRuleService(
		client,
		RulesFromConfig(cfg),
		RegistryFromConfig(cfg),
		usecase.OwnerSource(cfg.LeagueOwnerSource),
		logger,
	)
}

func RulesFromConfig(cfg config.Config) houserule.Rules {
	rules := houserule.DefaultRules()
	if cfg.LeaguePriceCeiling > 0 {
		rules.PriceCeiling = cfg.LeaguePriceCeiling
	}
	if len(cfg.LeagueNewlyPromotedClubIDs) > 0 {
		rules.NewlyPromotedClubIDs = append([]int64(nil), cfg.LeagueNewlyPromotedClubIDs...)
	}
	return rules
}

func RegistryFromConfig(cfg config.Config) []usecase.TeamTarget {
	out := make([]usecase.TeamTarget, 0, len(cfg.LeagueTeams))
	for _, item := range cfg.LeagueTeams {
		out = append(out, usecase.TeamTarget{TeamID: item.TeamID, Owner: item.Owner})
	}
	return out
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(NewHouseRuleService(cfg, logger), logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
