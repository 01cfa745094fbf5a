package add_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnsService/internal/domain"
	addClient "github.com/m04kA/SMC-TurnsService/internal/usecase/add_client"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidService     = "servicio desconocido"
	msgInvalidSpeed       = "velocidad desconocida"
	msgNeedsConfirmation  = "la hora prevista supera el límite del día"
)

type Handler struct {
	useCase AddClientUseCase
	logger  Logger
}

func NewHandler(useCase AddClientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, addClient.ErrInvalidService):
			h.logger.Warn("POST /clients - Unknown service: %q", req.Service)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, addClient.ErrInvalidSpeed):
			h.logger.Warn("POST /clients - Unknown speed: %q", req.Speed)
			handlers.RespondBadRequest(w, msgInvalidSpeed)

		default:
			h.logger.Error("POST /clients - Failed to add client: service=%s, speed=%s, error=%v",
				req.Service, req.Speed, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Выход за лимит без подтверждения: состояние не изменено, оператор
	// видит проекцию и решает сам
	if result.NeedsConfirmation {
		h.logger.Info("POST /clients - Confirmation required: service=%s, projected=%s, limit=%s",
			req.Service, result.ProjectedFinish.Format(domain.ClockFormat), result.Limit.Format(domain.ClockFormat))
		handlers.RespondJSON(w, http.StatusConflict, &ConfirmationRequiredResponse{
			NeedsConfirmation: true,
			Message:           msgNeedsConfirmation,
			ProjectedEndClock: result.ProjectedFinish.Format(domain.ClockFormat),
			LimitClock:        result.Limit.Format(domain.ClockFormat),
			PlannedMinutes:    result.PlannedMinutes,
		})
		return
	}

	h.logger.Info("POST /clients - Client added: service=%s, speed=%s, queued=%t",
		req.Service, req.Speed, result.Queued)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
