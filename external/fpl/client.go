package fpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	domainfpl "github.com/riskibarqy/fpl-house-rules/internal/domain/fpl"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/resilience"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-house-rules/1.0"
	defaultTimeout   = 20 * time.Second
	maxBodySize      = 8 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public Fantasy Premier League API.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight[[]byte]
	validate   *validator.Validate
}

var _ domainfpl.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     defaultUserAgent,
			MaxResponseBodySize:      maxBodySize,
			NoDefaultUserAgentHeader: true,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		timeout:    timeout,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Client) FetchBootstrap(ctx context.Context) (domainfpl.BootstrapDocument, error) {
	var payload bootstrapEnvelope
	if err := c.doJSON(ctx, "/bootstrap-static/", &payload); err != nil {
		return domainfpl.BootstrapDocument{}, fmt.Errorf("fetch bootstrap-static: %w", err)
	}
	return payload.toDomain(), nil
}

func (c *Client) FetchEntry(ctx context.Context, teamID int64) (domainfpl.EntryDocument, error) {
	if teamID <= 0 {
		return domainfpl.EntryDocument{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload entryEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/", teamID), &payload); err != nil {
		return domainfpl.EntryDocument{}, fmt.Errorf("fetch entry team_id=%d: %w", teamID, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) FetchPicks(ctx context.Context, teamID, gameweek int64) (domainfpl.PicksDocument, error) {
	if teamID <= 0 || gameweek <= 0 {
		return domainfpl.PicksDocument{}, fmt.Errorf("%w: team id and gameweek must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload picksEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", teamID, gameweek), &payload); err != nil {
		return domainfpl.PicksDocument{}, fmt.Errorf("fetch picks team_id=%d gameweek=%d: %w", teamID, gameweek, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	raw, err, shared := c.flight.Do(fullURL, func() ([]byte, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return body, execErr
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return crerr.Wrapf(usecase.ErrDependencyUnavailable, "fpl api is temporarily unavailable")
		}
		return err
	}
	if shared {
		c.logger.DebugContext(ctx, "fpl request coalesced", "path", path)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrMalformedDocument, "decode %s: %v", path, err)
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		return crerr.Wrapf(usecase.ErrMalformedDocument, "validate %s: %v", path, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	started := time.Now()
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(
			crerr.Wrapf(usecase.ErrDependencyUnavailable, "send request: %v", err),
			errFPLTransient,
		)
	}

	status := resp.StatusCode()
	c.logger.DebugContext(ctx, "fpl request completed",
		"url", fullURL,
		"status", status,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	switch {
	case status >= 200 && status < 300:
		return append([]byte(nil), resp.Body()...), nil
	case status == fasthttp.StatusNotFound:
		return nil, crerr.Wrapf(usecase.ErrNotFound, "fpl status=%d url=%s", status, fullURL)
	case status == fasthttp.StatusTooManyRequests || status >= 500:
		c.logger.WarnContext(ctx, "fpl upstream error", "url", fullURL, "status", status, "body", abbreviateBody(resp.Body()))
		return nil, crerr.Mark(
			crerr.Wrapf(usecase.ErrDependencyUnavailable, "fpl status=%d", status),
			errFPLTransient,
		)
	default:
		return nil, fmt.Errorf("fpl status=%d body=%s", status, abbreviateBody(resp.Body()))
	}
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errFPLTransient)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
