package domain

import "time"

// RunningService is the single currently occupied chair slot.
// At most one instance exists at any time; RUNNING and OVERTIME are the
// same record, distinguished by the clock having passed the planned end.
type RunningService struct {
	Service          ServiceType
	Speed            Speed
	StartedAt        time.Time
	Planned          time.Duration
	OvertimeNotified bool
}

// PlannedEnd returns the projected end of the running service
func (r *RunningService) PlannedEnd() time.Time {
	return r.StartedAt.Add(r.Planned)
}

// Remaining returns the time left until the planned end; negative once the
// service runs past its plan
func (r *RunningService) Remaining(now time.Time) time.Duration {
	return r.PlannedEnd().Sub(now)
}

// IsOvertime returns true if the service has run past its planned end
func (r *RunningService) IsOvertime(now time.Time) bool {
	return r.Remaining(now) < 0
}

// ProgressRatio returns elapsed/planned clamped to [0, 1].
// Drives the circular progress indicator.
func (r *RunningService) ProgressRatio(now time.Time) float64 {
	if r.Planned <= 0 {
		return 1
	}
	ratio := float64(now.Sub(r.StartedAt)) / float64(r.Planned)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
