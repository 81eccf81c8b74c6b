package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
)

// Config stores runtime configuration for the API and the checker CLI.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	LogLevel                   logging.Level
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	FPLBaseURL                 string
	FPLUserAgent               string
	FPLTimeout                 time.Duration
	FPLCircuitEnabled          bool
	FPLCircuitFailureCount     int
	FPLCircuitOpenTimeout      time.Duration
	FPLCircuitHalfOpenMaxReq   int
	LeagueTeams                []LeagueTeam
	LeagueNewlyPromotedClubIDs []int64
	LeaguePriceCeiling         float64
	LeagueOwnerSource          string
}

// LeagueTeam is one registry row from LEAGUE_TEAMS. Owner may be empty.
type LeagueTeam struct {
	TeamID int64
	Owner  string
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	OwnerSourceConfig = "config"
	OwnerSourceEntry  = "entry"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "fpl-house-rules"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}

	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadFPL(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLeague(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadObservability(cfg *Config) error {
	var err error

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", false); err != nil {
		return err
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}

	return nil
}

func loadFPL(cfg *Config) error {
	var err error

	cfg.FPLBaseURL = strings.TrimSpace(getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api"))
	cfg.FPLUserAgent = strings.TrimSpace(getEnv("FPL_USER_AGENT", "fpl-house-rules/1.0"))
	if cfg.FPLTimeout, err = getEnvAsDuration("FPL_TIMEOUT", "20s"); err != nil {
		return err
	}

	if cfg.FPLCircuitEnabled, err = getEnvAsBool("FPL_CIRCUIT_ENABLED", true); err != nil {
		return err
	}
	if cfg.FPLCircuitFailureCount, err = getEnvAsInt("FPL_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse FPL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.FPLCircuitFailureCount < 1 {
		return fmt.Errorf("FPL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.FPLCircuitOpenTimeout, err = getEnvAsDuration("FPL_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return err
	}
	if cfg.FPLCircuitHalfOpenMaxReq, err = getEnvAsInt("FPL_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse FPL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.FPLCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("FPL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	return nil
}

func loadLeague(cfg *Config) error {
	var err error

	if cfg.LeagueTeams, err = parseLeagueTeams(getEnv("LEAGUE_TEAMS", "")); err != nil {
		return fmt.Errorf("parse LEAGUE_TEAMS: %w", err)
	}
	if cfg.LeagueNewlyPromotedClubIDs, err = parseIDList(getEnv("LEAGUE_NEWLY_PROMOTED_CLUB_IDS", "3,11,17")); err != nil {
		return fmt.Errorf("parse LEAGUE_NEWLY_PROMOTED_CLUB_IDS: %w", err)
	}

	ceiling := strings.TrimSpace(getEnv("LEAGUE_PRICE_CEILING", "10.0"))
	if cfg.LeaguePriceCeiling, err = strconv.ParseFloat(ceiling, 64); err != nil {
		return fmt.Errorf("parse LEAGUE_PRICE_CEILING: %w", err)
	}
	if cfg.LeaguePriceCeiling <= 0 {
		return fmt.Errorf("LEAGUE_PRICE_CEILING must be > 0")
	}

	cfg.LeagueOwnerSource = strings.ToLower(strings.TrimSpace(getEnv("LEAGUE_OWNER_SOURCE", OwnerSourceConfig)))
	switch cfg.LeagueOwnerSource {
	case OwnerSourceConfig, OwnerSourceEntry:
	default:
		return fmt.Errorf("invalid LEAGUE_OWNER_SOURCE %q: valid values are %s, %s", cfg.LeagueOwnerSource, OwnerSourceConfig, OwnerSourceEntry)
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	out, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseLeagueTeams reads "team_id:Owner Name,team_id". Order is kept and a
// repeated team id is rejected.
func parseLeagueTeams(raw string) ([]LeagueTeam, error) {
	items := splitCSV(raw)
	out := make([]LeagueTeam, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		segments := strings.SplitN(item, ":", 2)

		id, err := strconv.ParseInt(strings.TrimSpace(segments[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid team id in item %q: %w", item, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("team id must be > 0 in item %q", item)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate team id %d", id)
		}
		seen[id] = struct{}{}

		row := LeagueTeam{TeamID: id}
		if len(segments) == 2 {
			row.Owner = strings.TrimSpace(segments[1])
		}
		out = append(out, row)
	}
	return out, nil
}

func parseIDList(raw string) ([]int64, error) {
	items := splitCSV(raw)
	out := make([]int64, 0, len(items))
	for _, item := range items {
		value, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0, got %d", value)
		}
		out = append(out, value)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
