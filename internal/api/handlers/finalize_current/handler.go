package finalize_current

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnsService/internal/domain"
	finalizeCurrent "github.com/m04kA/SMC-TurnsService/internal/usecase/finalize_current"
)

const (
	msgNoRunningService = "no hay ningún servicio en curso"
)

// FinalizedResponse HTTP response model
type FinalizedResponse struct {
	ID            string `json:"id"`
	Service       string `json:"service"`
	Speed         string `json:"speed"`
	StartClock    string `json:"startClock"`
	EndClock      string `json:"endClock"`
	DurationLabel string `json:"durationLabel"`
	ActualMs      int64  `json:"actualMs"`
}

type Handler struct {
	useCase FinalizeCurrentUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeCurrentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timer/finalize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, finalizeCurrent.ErrNoRunningService):
			h.logger.Warn("POST /timer/finalize - Nothing to finalize")
			handlers.RespondConflict(w, msgNoRunningService)

		default:
			h.logger.Error("POST /timer/finalize - Failed to finalize: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timer/finalize - Finalized %s (%s), actual %s",
		result.Service, result.Speed, domain.FormatDurationShort(result.Actual))
	handlers.RespondJSON(w, http.StatusOK, &FinalizedResponse{
		ID:            result.ID,
		Service:       result.Service,
		Speed:         result.Speed,
		StartClock:    result.StartedAt.Format(domain.ClockFormat),
		EndClock:      result.EndedAt.Format(domain.ClockFormat),
		DurationLabel: domain.FormatDurationShort(result.Actual),
		ActualMs:      result.Actual.Milliseconds(),
	})
}
