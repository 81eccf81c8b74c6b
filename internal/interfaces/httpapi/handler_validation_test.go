package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/houserule"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/player"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
)

type stubChecker struct {
	gotTargets []usecase.TeamTarget
	report     usecase.Report
	err        error
}

func (s *stubChecker) CheckTeams(_ context.Context, targets []usecase.TeamTarget) (usecase.Report, error) {
	s.gotTargets = targets
	return s.report, s.err
}

func (s *stubChecker) CheckLeague(context.Context) (usecase.Report, error) {
	return s.report, s.err
}

type reportEnvelope struct {
	APIVersion string              `json:"apiVersion"`
	Data       validationReportDTO `json:"data"`
	Error      *googleErrorBody    `json:"error"`
}

func sampleReport() usecase.Report {
	violations := []houserule.ValidationResult{
		houserule.Invalid("Big wompers! Jake has gone overbudget with Haaland (14m)"),
		houserule.Invalid("Yikes! Jake has not included players from Burnley. That's gonna sting"),
	}
	return usecase.Report{
		Gameweek: 7,
		Teams: []usecase.TeamReport{
			{
				TeamID:     2239760,
				TeamName:   "Pedro Cask Ale",
				Owner:      "Jake",
				Gameweek:   7,
				Captain:    player.Player{ID: 430, Name: "Haaland"},
				Violations: violations,
			},
		},
		Violations: violations,
	}
}

func newTestRouter(checker HouseRuleChecker) http.Handler {
	return NewRouter(NewHandler(checker, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func TestValidateTeams_Success(t *testing.T) {
	t.Parallel()

	checker := &stubChecker{report: sampleReport()}
	router := newTestRouter(checker)

	body := `{"teams":[2239760,5005],"owners":{"2239760":" Jake "}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/validations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	if len(checker.gotTargets) != 2 {
		t.Fatalf("unexpected targets: %+v", checker.gotTargets)
	}
	if checker.gotTargets[0] != (usecase.TeamTarget{TeamID: 2239760, Owner: "Jake"}) {
		t.Fatalf("unexpected first target: %+v", checker.gotTargets[0])
	}
	if checker.gotTargets[1] != (usecase.TeamTarget{TeamID: 5005}) {
		t.Fatalf("unexpected second target: %+v", checker.gotTargets[1])
	}

	var got reportEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Data.Gameweek != 7 || len(got.Data.Violations) != 2 {
		t.Fatalf("unexpected data: %+v", got.Data)
	}
	wantMessage := "Big wompers! Jake has gone overbudget with Haaland (14m)\n\nYikes! Jake has not included players from Burnley. That's gonna sting"
	if got.Data.Message != wantMessage {
		t.Fatalf("unexpected message: %q", got.Data.Message)
	}
	if len(got.Data.Teams) != 1 || got.Data.Teams[0].Captain != "Haaland" {
		t.Fatalf("unexpected teams: %+v", got.Data.Teams)
	}
}

func TestValidateTeams_RejectsBadPayloads(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"invalid json":   `{"teams": [`,
		"unknown field":  `{"teams":[1],"league":"x"}`,
		"empty teams":    `{"teams":[]}`,
		"missing teams":  `{}`,
		"zero team id":   `{"teams":[0]}`,
		"duplicate team": `{"teams":[1,1]}`,
		"owner key":      `{"teams":[1],"owners":{"abc":"Jake"}}`,
		"unlisted owner": `{"teams":[1],"owners":{"2":"Jake"}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			checker := &stubChecker{}
			router := newTestRouter(checker)

			req := httptest.NewRequest(http.MethodPost, "/v1/validations", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			if checker.gotTargets != nil {
				t.Fatalf("checker should not be called for %s", name)
			}
		})
	}
}

func TestValidateLeague_MapsUpstreamErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("fetch entry: %w", usecase.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("build player index: %w", usecase.ErrIntegrity), want: http.StatusBadGateway},
		{err: fmt.Errorf("decode: %w", usecase.ErrMalformedDocument), want: http.StatusBadGateway},
		{err: fmt.Errorf("fetch bootstrap: %w", usecase.ErrDependencyUnavailable), want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("%w: no league teams configured", usecase.ErrInvalidInput), want: http.StatusBadRequest},
	}

	for _, tc := range cases {
		router := newTestRouter(&stubChecker{err: tc.err})

		req := httptest.NewRequest(http.MethodGet, "/v1/validations/league", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubChecker{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected healthz response: %d %s", rec.Code, rec.Body.String())
	}
}

type panicChecker struct{ stubChecker }

func (panicChecker) CheckLeague(context.Context) (usecase.Report, error) {
	panic("boom")
}

func TestRouter_RecoversPanics(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&panicChecker{})
	req := httptest.NewRequest(http.MethodGet, "/v1/validations/league", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
