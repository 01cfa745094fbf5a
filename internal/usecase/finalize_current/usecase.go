package finalize_current

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

// UseCase use case для завершения текущей услуги.
// Планировщик фиксирует фактическое время и помечает следующего в очереди
// готовым; запись уходит в журнал.
type UseCase struct {
	scheduler SchedulerService
	history   HistoryService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sched SchedulerService, history HistoryService, logger Logger) *UseCase {
	return &UseCase{
		scheduler: sched,
		history:   history,
		logger:    logger,
	}
}

// Execute выполняет use case завершения текущей услуги
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	entry, err := uc.scheduler.FinalizeCurrent()
	if err != nil {
		if errors.Is(err, scheduler.ErrNoRunningService) {
			uc.logger.Warn("FinalizeCurrent: nothing to finalize")
			return nil, ErrNoRunningService
		}
		uc.logger.Error("FinalizeCurrent: %v", err)
		return nil, err
	}

	uc.history.Record(*entry)

	uc.logger.Info("FinalizeCurrent: %s (%s) finished at %s, actual %s",
		entry.Service, entry.Speed, entry.EndedAt.Format(domain.ClockFormat),
		domain.FormatDurationShort(entry.Actual))

	return &Response{
		ID:        entry.ID,
		Service:   string(entry.Service),
		Speed:     string(entry.Speed),
		StartedAt: entry.StartedAt,
		EndedAt:   entry.EndedAt,
		Actual:    entry.Actual,
	}, nil
}
