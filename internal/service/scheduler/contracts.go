package scheduler

import (
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// Notifier интерфейс получателя события "услуга вышла за план".
// Событие генерируется ровно один раз за запуск услуги, на первом тике
// после пересечения нуля обратным отсчётом.
type Notifier interface {
	OvertimeStarted(service domain.ServiceType, speed domain.Speed, overBy time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
