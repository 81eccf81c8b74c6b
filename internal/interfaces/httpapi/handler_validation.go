package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-house-rules/internal/domain/houserule"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
)

const reasonSeparator = "\n\n"

type validateTeamsRequest struct {
	Teams  []int64           `json:"teams" validate:"required,min=1,max=50,dive,gt=0"`
	Owners map[string]string `json:"owners" validate:"omitempty,max=50,dive,max=100"`
}

type validationReportDTO struct {
	Gameweek   int64           `json:"gameweek"`
	Violations []string        `json:"violations"`
	Message    string          `json:"message"`
	Teams      []teamReportDTO `json:"teams"`
}

type teamReportDTO struct {
	TeamID     int64    `json:"team_id"`
	TeamName   string   `json:"team_name"`
	Owner      string   `json:"owner"`
	Gameweek   int64    `json:"gameweek"`
	Captain    string   `json:"captain,omitempty"`
	Violations []string `json:"violations"`
}

func (h *Handler) ValidateTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateTeams")
	defer span.End()

	var req validateTeamsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	targets, err := buildTargets(req)
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := h.checker.CheckTeams(ctx, targets)
	if err != nil {
		h.logger.WarnContext(ctx, "validate teams failed", "teams", len(targets), "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, reportToDTO(report))
}

func (h *Handler) ValidateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateLeague")
	defer span.End()

	report, err := h.checker.CheckLeague(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "validate league failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, reportToDTO(report))
}

// buildTargets keeps request order and rejects owners for teams not listed.
func buildTargets(req validateTeamsRequest) ([]usecase.TeamTarget, error) {
	listed := make(map[int64]struct{}, len(req.Teams))
	targets := make([]usecase.TeamTarget, 0, len(req.Teams))
	for _, id := range req.Teams {
		if _, dup := listed[id]; dup {
			return nil, fmt.Errorf("%w: duplicate team id %d", usecase.ErrInvalidInput, id)
		}
		listed[id] = struct{}{}
		targets = append(targets, usecase.TeamTarget{TeamID: id})
	}

	for rawID, owner := range req.Owners {
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: owners key %q is not a team id", usecase.ErrInvalidInput, rawID)
		}
		if _, ok := listed[id]; !ok {
			return nil, fmt.Errorf("%w: owner given for unlisted team id %d", usecase.ErrInvalidInput, id)
		}
		for i := range targets {
			if targets[i].TeamID == id {
				targets[i].Owner = strings.TrimSpace(owner)
			}
		}
	}

	return targets, nil
}

func reportToDTO(report usecase.Report) validationReportDTO {
	out := validationReportDTO{
		Gameweek:   report.Gameweek,
		Violations: report.Reasons(),
		Message:    houserule.JoinReasons(report.Violations, reasonSeparator),
		Teams:      make([]teamReportDTO, 0, len(report.Teams)),
	}
	for _, item := range report.Teams {
		violations := make([]string, 0, len(item.Violations))
		for _, v := range item.Violations {
			violations = append(violations, v.Reason)
		}
		out.Teams = append(out.Teams, teamReportDTO{
			TeamID:     item.TeamID,
			TeamName:   item.TeamName,
			Owner:      item.Owner,
			Gameweek:   item.Gameweek,
			Captain:    item.Captain.Name,
			Violations: violations,
		})
	}
	return out
}
