package remove_queue_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurnsService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

const (
	msgMissingItemID = "falta el identificador del cliente"
	msgItemNotFound  = "cliente no encontrado en la cola"
)

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

// Handle DELETE /api/v1/queue/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID := vars["itemId"]
	if itemID == "" {
		h.logger.Warn("DELETE /queue/{id} - Missing item ID")
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	if err := h.scheduler.Remove(itemID); err != nil {
		switch {
		case errors.Is(err, scheduler.ErrItemNotFound):
			h.logger.Warn("DELETE /queue/{id} - Item not found: id=%s", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("DELETE /queue/{id} - Failed to remove item id=%s: %v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /queue/{id} - Removed item id=%s", itemID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
