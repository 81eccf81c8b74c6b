package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-house-rules/internal/platform/logging"
	"github.com/riskibarqy/fpl-house-rules/internal/usecase"
)

// HouseRuleChecker runs the house rules over fantasy entries.
type HouseRuleChecker interface {
	CheckTeams(ctx context.Context, targets []usecase.TeamTarget) (usecase.Report, error)
	CheckLeague(ctx context.Context) (usecase.Report, error)
}

type Handler struct {
	checker   HouseRuleChecker
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(checker HouseRuleChecker, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		checker:   checker,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
