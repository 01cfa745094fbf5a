package get_snapshot

import (
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
)

type Handler struct {
	useCase GetSnapshotUseCase
	logger  Logger
}

func NewHandler(useCase GetSnapshotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/snapshot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /snapshot - Failed to build snapshot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
