package start_next

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

const (
	msgServiceRunning = "ya hay un servicio en curso"
	msgNothingReady   = "no hay ningún cliente listo para empezar"
)

// StartedResponse HTTP response model
type StartedResponse struct {
	Service    string `json:"service"`
	Speed      string `json:"speed"`
	StartClock string `json:"startClock"`
	EndClock   string `json:"endClock"`
}

type Handler struct {
	scheduler SchedulerService
	logger    Logger
}

func NewHandler(sched SchedulerService, logger Logger) *Handler {
	return &Handler{
		scheduler: sched,
		logger:    logger,
	}
}

// Handle POST /api/v1/timer/start-next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	running, err := h.scheduler.StartNextReady()
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrServiceRunning):
			h.logger.Warn("POST /timer/start-next - Service already running")
			handlers.RespondConflict(w, msgServiceRunning)

		case errors.Is(err, scheduler.ErrNothingReady):
			h.logger.Warn("POST /timer/start-next - No ready client in queue")
			handlers.RespondConflict(w, msgNothingReady)

		default:
			h.logger.Error("POST /timer/start-next - Failed to start: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timer/start-next - Started %s (%s), planned end %s",
		running.Service, running.Speed, running.PlannedEnd().Format(domain.ClockFormat))
	handlers.RespondJSON(w, http.StatusOK, &StartedResponse{
		Service:    string(running.Service),
		Speed:      string(running.Speed),
		StartClock: running.StartedAt.Format(domain.ClockFormat),
		EndClock:   running.PlannedEnd().Format(domain.ClockFormat),
	})
}
