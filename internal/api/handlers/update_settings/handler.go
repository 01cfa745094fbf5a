package update_settings

import (
	"net/http"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnsService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
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

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.service.Save(&req)

	h.logger.Info("PUT /settings - Rule set updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
