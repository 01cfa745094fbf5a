package restore_settings

import (
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/settings/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.RestoreDefaults()

	h.logger.Info("POST /settings/restore - Defaults restored")
	handlers.RespondJSON(w, http.StatusOK, result)
}
