package get_snapshot

import (
	"context"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// UseCase use case для получения снимка состояния движка
type UseCase struct {
	scheduler SchedulerService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sched SchedulerService, logger Logger) *UseCase {
	return &UseCase{
		scheduler: sched,
		logger:    logger,
	}
}

// Execute собирает снимок: текущая услуга с обратным отсчетом, очередь с
// расчетным временем старта и классификация последнего планового окончания
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	snap := uc.scheduler.Snapshot()

	resp := &Response{
		Now:   snap.Now,
		Queue: make([]QueueItemView, 0, len(snap.Queue)),
	}

	if snap.Running != nil {
		run := snap.Running
		remaining := run.Remaining(snap.Now)
		countdown := domain.FormatCountdown(remaining)
		if run.IsOvertime(snap.Now) {
			countdown = "+" + countdown
		}
		resp.Running = &RunningView{
			Service:     string(run.Service),
			Speed:       string(run.Speed),
			StartedAt:   run.StartedAt,
			PlannedEnd:  run.PlannedEnd(),
			EndClock:    run.PlannedEnd().Format(domain.ClockFormat),
			RemainingMs: remaining.Milliseconds(),
			Countdown:   countdown,
			Progress:    run.ProgressRatio(snap.Now),
			Overtime:    run.IsOvertime(snap.Now),
		}
	}

	for i, item := range snap.Queue {
		resp.Queue = append(resp.Queue, QueueItemView{
			ID:          item.ID,
			Service:     string(item.Service),
			Speed:       string(item.Speed),
			StartAt:     item.StartAt,
			EndAt:       item.EndAt,
			StartClock:  item.StartAt.Format(domain.ClockFormat),
			EndClock:    item.EndAt.Format(domain.ClockFormat),
			WaitMinutes: item.WaitMinutes(snap.Now),
			Ready:       item.Ready,
			IsNext:      i == 0,
		})
	}

	risk, limit := domain.ClassifyFinish(snap.LastPlannedEnd, snap.Now)
	resp.Risk = RiskView{
		Level:      string(risk),
		Label:      risk.Label(),
		Limit:      limit,
		LimitClock: limit.Format(domain.ClockFormat),
	}

	return resp, nil
}
