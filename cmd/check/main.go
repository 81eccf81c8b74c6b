package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/fpl-house-rules/internal/app"
	"github.com/riskibarqy/fpl-house-rules/internal/config"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogLevel, stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if len(cfg.LeagueTeams) == 0 {
		logger.Error("no league teams configured", "env", "LEAGUE_TEAMS")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.NewHouseRuleService(cfg, logger).CheckLeague(ctx)
	if err != nil {
		logger.Error("house rule check failed", "error", err)
		return 1
	}

	printViolations(stdout, report)
	return 0
}

func printViolations(w io.Writer, report usecase.Report) {
	for _, reason := range report.Reasons() {
		fmt.Fprintf(w, "%s\n\n\n", reason)
	}
}
