package finalize_current

import (
	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// SchedulerService интерфейс планировщика
type SchedulerService interface {
	FinalizeCurrent() (*domain.HistoryEntry, error)
}

// HistoryService интерфейс журнала выполненных услуг
type HistoryService interface {
	Record(entry domain.HistoryEntry)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
