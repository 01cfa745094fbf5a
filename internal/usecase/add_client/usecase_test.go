package add_client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
)

type fakeScheduler struct {
	now      time.Time
	busyFor  time.Duration
	added    int
	lastDur  time.Duration
	runQueue bool
}

func (f *fakeScheduler) ProjectedFinishWith(extra time.Duration) (time.Time, time.Time) {
	return f.now.Add(f.busyFor + extra), f.now
}

func (f *fakeScheduler) Add(service domain.ServiceType, speed domain.Speed, planned time.Duration) *scheduler.AddResult {
	f.added++
	f.lastDur = planned
	if f.runQueue {
		return &scheduler.AddResult{
			Queued: true,
			Item: &domain.QueueItem{
				ID:       "q-1",
				Service:  service,
				Speed:    speed,
				Duration: planned,
				StartAt:  f.now.Add(f.busyFor),
				EndAt:    f.now.Add(f.busyFor + planned),
			},
		}
	}
	return &scheduler.AddResult{
		Running: &domain.RunningService{
			Service:   service,
			Speed:     speed,
			StartedAt: f.now,
			Planned:   planned,
		},
	}
}

type fakeSettings struct {
	rules domain.RuleSet
}

func (f *fakeSettings) Current() domain.RuleSet {
	return f.rules
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.Local)
}

func TestExecute_RejectsUnknownService(t *testing.T) {
	uc := NewUseCase(&fakeScheduler{now: at(9, 0)}, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{Service: "Afeitado", Speed: domain.SpeedNormal})

	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestExecute_RejectsUnknownSpeed(t *testing.T) {
	uc := NewUseCase(&fakeScheduler{now: at(9, 0)}, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorte, Speed: "Turbo"})

	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestExecute_StartsWhenIdle(t *testing.T) {
	sched := &fakeScheduler{now: at(9, 0)}
	uc := NewUseCase(sched, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorte, Speed: domain.SpeedNormal})

	require.NoError(t, err)
	assert.False(t, resp.NeedsConfirmation)
	assert.Equal(t, domain.RiskOK, resp.Risk)
	assert.Equal(t, 30, resp.PlannedMinutes)
	assert.False(t, resp.Queued)
	require.NotNil(t, resp.Running)
	assert.Equal(t, domain.ServiceCorte, resp.Running.Service)
	assert.Equal(t, 1, sched.added)
	assert.Equal(t, 30*time.Minute, sched.lastDur)
}

func TestExecute_QueuesWhenBusy(t *testing.T) {
	sched := &fakeScheduler{now: at(9, 0), busyFor: 20 * time.Minute, runQueue: true}
	uc := NewUseCase(sched, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorteBarba, Speed: domain.SpeedNormal})

	require.NoError(t, err)
	assert.True(t, resp.Queued)
	require.NotNil(t, resp.Item)
	assert.Equal(t, at(9, 20), resp.Item.StartAt)
	assert.Equal(t, at(10, 5), resp.Item.EndAt)
}

func TestExecute_BreachWithoutConfirmationDoesNotMutate(t *testing.T) {
	// 12:40 + 30m = 13:10, за утренним лимитом 13:00.
	sched := &fakeScheduler{now: at(12, 40)}
	uc := NewUseCase(sched, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorte, Speed: domain.SpeedNormal})

	require.NoError(t, err)
	assert.True(t, resp.NeedsConfirmation)
	assert.Equal(t, domain.RiskBreach, resp.Risk)
	assert.Equal(t, at(13, 0), resp.Limit)
	assert.Equal(t, at(13, 10), resp.ProjectedFinish)
	assert.Equal(t, 0, sched.added, "breach without confirmation must not enqueue")
}

func TestExecute_BreachConfirmedProceeds(t *testing.T) {
	sched := &fakeScheduler{now: at(12, 40)}
	uc := NewUseCase(sched, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		Service:   domain.ServiceCorte,
		Speed:     domain.SpeedNormal,
		Confirmed: true,
	})

	require.NoError(t, err)
	assert.False(t, resp.NeedsConfirmation)
	assert.Equal(t, domain.RiskBreach, resp.Risk)
	assert.Equal(t, 1, sched.added)
}

func TestExecute_WarningDoesNotRequireConfirmation(t *testing.T) {
	// 12:25 + 30m = 12:55, внутри окна предупреждения 12:50-13:00.
	sched := &fakeScheduler{now: at(12, 25)}
	uc := NewUseCase(sched, &fakeSettings{rules: domain.DefaultRuleSet()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorte, Speed: domain.SpeedNormal})

	require.NoError(t, err)
	assert.False(t, resp.NeedsConfirmation)
	assert.Equal(t, domain.RiskWarning, resp.Risk)
	assert.Equal(t, 1, sched.added)
}

func TestExecute_UsesConfiguredRules(t *testing.T) {
	rules := domain.DefaultRuleSet()
	rules.BaseMinutes[string(domain.ServiceCorte)] = 50
	sched := &fakeScheduler{now: at(9, 0)}
	uc := NewUseCase(sched, &fakeSettings{rules: rules}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Service: domain.ServiceCorte, Speed: domain.SpeedRapido})

	require.NoError(t, err)
	assert.Equal(t, 40, resp.PlannedMinutes)
	assert.Equal(t, 40*time.Minute, sched.lastDur)
}
