package start_next

import (
	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

type SchedulerService interface {
	StartNextReady() (*domain.RunningService, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
