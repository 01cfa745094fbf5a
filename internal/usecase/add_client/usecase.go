package add_client

import (
	"context"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// UseCase use case для добавления клиента в работу или очередь
type UseCase struct {
	scheduler SchedulerService
	settings  SettingsService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduler SchedulerService, settings SettingsService, logger Logger) *UseCase {
	return &UseCase{
		scheduler: scheduler,
		settings:  settings,
		logger:    logger,
	}
}

// Execute выполняет use case добавления клиента.
// Сначала считает проекцию окончания и классифицирует риск против активного
// лимита дня. Выход за лимит без подтверждения не мутирует состояние:
// возвращается NeedsConfirmation с проекцией, и оператор решает сам.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("AddClient: service=%s, speed=%s, confirmed=%t", req.Service, req.Speed, req.Confirmed)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddClient: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность по текущим правилам
	rules := uc.settings.Current()
	planned := domain.PlannedDuration(req.Service, req.Speed, rules)

	// 3. Проекция окончания с учетом текущей работы и очереди
	projected, now := uc.scheduler.ProjectedFinishWith(planned)
	risk, limit := domain.ClassifyFinish(projected, now)

	// 4. Выход за лимит требует явного подтверждения
	if risk == domain.RiskBreach && !req.Confirmed {
		uc.logger.Warn("AddClient: projected finish %s past limit %s, confirmation required",
			projected.Format(domain.ClockFormat), limit.Format(domain.ClockFormat))
		return &Response{
			NeedsConfirmation: true,
			Risk:              risk,
			ProjectedFinish:   projected,
			Limit:             limit,
			PlannedMinutes:    int(planned.Minutes()),
		}, nil
	}

	// 5. Атомарно: старт, если кресло свободно, иначе в хвост очереди
	result := uc.scheduler.Add(req.Service, req.Speed, planned)

	if result.Queued {
		uc.logger.Info("AddClient: queued item id=%s, start=%s", result.Item.ID,
			result.Item.StartAt.Format(domain.ClockFormat))
	} else {
		uc.logger.Info("AddClient: started %s (%s), planned end %s", result.Running.Service,
			result.Running.Speed, result.Running.PlannedEnd().Format(domain.ClockFormat))
	}

	return &Response{
		Risk:            risk,
		ProjectedFinish: projected,
		Limit:           limit,
		PlannedMinutes:  int(planned.Minutes()),
		Queued:          result.Queued,
		Item:            result.Item,
		Running:         result.Running,
	}, nil
}
