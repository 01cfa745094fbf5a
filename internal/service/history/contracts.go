package history

import "github.com/m04kA/SMC-TurnsService/internal/domain"

// HistoryRepository интерфейс репозитория журнала
type HistoryRepository interface {
	Load() ([]domain.HistoryEntry, error)
	Save(entries []domain.HistoryEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
