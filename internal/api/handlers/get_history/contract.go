package get_history

import (
	"github.com/m04kA/SMC-TurnsService/internal/service/history/models"
)

type HistoryService interface {
	List() *models.HistoryResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
