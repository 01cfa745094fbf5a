package export_history

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

// Handle GET /api/v1/history/export
// Отдает журнал в текстовом формате, пригодном для отправки в мессенджер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body := h.service.ExportText()

	h.logger.Info("GET /history/export - Exported %d bytes", len(body))
	handlers.RespondText(w, http.StatusOK, body)
}
