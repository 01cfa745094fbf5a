package get_snapshot

import (
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

// SchedulerService интерфейс планировщика
type SchedulerService interface {
	Snapshot() *scheduler.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
