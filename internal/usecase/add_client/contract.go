package add_client

import (
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

// SchedulerService интерфейс движка планирования
type SchedulerService interface {
	Add(service domain.ServiceType, speed domain.Speed, planned time.Duration) *scheduler.AddResult
	ProjectedFinishWith(extra time.Duration) (time.Time, time.Time)
}

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Current() domain.RuleSet
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
