package domain

import "time"

// QueueItem represents a pending service waiting for the chair.
// StartAt/EndAt are projections recomputed on every reflow; Ready is set
// only on the front item right after a finalize and means "eligible to
// start, awaiting the operator's explicit start action".
type QueueItem struct {
	ID       string
	Service  ServiceType
	Speed    Speed
	Duration time.Duration
	StartAt  time.Time
	EndAt    time.Time
	Ready    bool
}

// WaitMinutes returns the projected wait from now until the item starts,
// in whole minutes, never negative
func (q *QueueItem) WaitMinutes(now time.Time) int {
	wait := q.StartAt.Sub(now)
	if wait < 0 {
		return 0
	}
	return int((wait + 30*time.Second) / time.Minute)
}
