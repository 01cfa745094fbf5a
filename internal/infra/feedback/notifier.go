package feedback

import (
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier доводит событие "услуга вышла за план" до оператора.
// Здесь это лог плюс счетчик метрик; фронтенд узнает о просрочке из
// снимка состояния.
type Notifier struct {
	logger  Logger
	metrics *metrics.Metrics
}

// New создает нотификатор. metrics может быть nil, если метрики выключены.
func New(logger Logger, m *metrics.Metrics) *Notifier {
	return &Notifier{
		logger:  logger,
		metrics: m,
	}
}

// OvertimeStarted вызывается планировщиком ровно один раз за запуск услуги
func (n *Notifier) OvertimeStarted(service domain.ServiceType, speed domain.Speed, overBy time.Duration) {
	n.logger.Warn("overtime: %s (%s) exceeded planned duration by %s",
		service, speed, domain.FormatCountdown(overBy))

	if n.metrics != nil {
		n.metrics.OvertimeTotal.Inc()
	}
}
