package clear_history

import (
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Clear()

	h.logger.Info("DELETE /history - History cleared")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
