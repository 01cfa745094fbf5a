package get_snapshot

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
	snap *scheduler.Snapshot
}

func (f *fakeScheduler) Snapshot() *scheduler.Snapshot {
	return f.snap
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.Local)
}

func TestExecute_IdleSnapshot(t *testing.T) {
	now := at(9, 0)
	uc := NewUseCase(&fakeScheduler{snap: &scheduler.Snapshot{
		Now:            now,
		LastPlannedEnd: now,
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Nil(t, resp.Running)
	assert.Empty(t, resp.Queue)
	assert.Equal(t, "ok", resp.Risk.Level)
	assert.Equal(t, "OK", resp.Risk.Label)
	assert.Equal(t, "13:00", resp.Risk.LimitClock)
}

func TestExecute_RunningCountdown(t *testing.T) {
	now := at(9, 10)
	uc := NewUseCase(&fakeScheduler{snap: &scheduler.Snapshot{
		Now: now,
		Running: &domain.RunningService{
			Service:   domain.ServiceCorte,
			Speed:     domain.SpeedNormal,
			StartedAt: at(9, 0),
			Planned:   30 * time.Minute,
		},
		LastPlannedEnd: at(9, 30),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resp.Running)
	assert.Equal(t, "20:00", resp.Running.Countdown)
	assert.Equal(t, "09:30", resp.Running.EndClock)
	assert.False(t, resp.Running.Overtime)
	assert.InDelta(t, 1.0/3.0, resp.Running.Progress, 0.001)
}

func TestExecute_OvertimeCountdownHasPlusPrefix(t *testing.T) {
	now := at(9, 35)
	uc := NewUseCase(&fakeScheduler{snap: &scheduler.Snapshot{
		Now: now,
		Running: &domain.RunningService{
			Service:   domain.ServiceCorte,
			Speed:     domain.SpeedNormal,
			StartedAt: at(9, 0),
			Planned:   30 * time.Minute,
		},
		LastPlannedEnd: at(9, 30),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resp.Running)
	assert.True(t, resp.Running.Overtime)
	assert.Equal(t, "+05:00", resp.Running.Countdown)
	assert.Equal(t, 1.0, resp.Running.Progress)
}

func TestExecute_QueueProjectionsAndNextMark(t *testing.T) {
	now := at(9, 0)
	uc := NewUseCase(&fakeScheduler{snap: &scheduler.Snapshot{
		Now: now,
		Running: &domain.RunningService{
			Service:   domain.ServiceColor,
			Speed:     domain.SpeedNormal,
			StartedAt: at(8, 0),
			Planned:   170 * time.Minute,
		},
		Queue: []domain.QueueItem{
			{ID: "a", Service: domain.ServiceCorte, Speed: domain.SpeedNormal,
				Duration: 30 * time.Minute, StartAt: at(10, 50), EndAt: at(11, 20), Ready: true},
			{ID: "b", Service: domain.ServiceCorteBarba, Speed: domain.SpeedRapido,
				Duration: 35 * time.Minute, StartAt: at(11, 20), EndAt: at(11, 55)},
		},
		LastPlannedEnd: at(11, 55),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Queue, 2)

	assert.True(t, resp.Queue[0].IsNext)
	assert.True(t, resp.Queue[0].Ready)
	assert.Equal(t, "10:50", resp.Queue[0].StartClock)
	assert.Equal(t, 110, resp.Queue[0].WaitMinutes)

	assert.False(t, resp.Queue[1].IsNext)
	assert.Equal(t, "11:55", resp.Queue[1].EndClock)
	assert.Equal(t, 140, resp.Queue[1].WaitMinutes)
}

func TestExecute_RiskFollowsLastPlannedEnd(t *testing.T) {
	now := at(12, 0)
	uc := NewUseCase(&fakeScheduler{snap: &scheduler.Snapshot{
		Now:            now,
		LastPlannedEnd: at(12, 55),
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "warn", resp.Risk.Level)
	assert.Equal(t, "AMARILLO", resp.Risk.Label)
}
