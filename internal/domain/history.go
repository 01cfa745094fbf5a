package domain

import (
	"fmt"
	"time"
)

// HistoryEntry is one finalized service. Entries are append-only: never
// mutated or reordered after creation.
type HistoryEntry struct {
	ID        string
	Service   ServiceType
	Speed     Speed
	StartedAt time.Time
	EndedAt   time.Time
	Actual    time.Duration // real elapsed time, may differ from the plan
}

// FormatDurationShort renders a duration the way the operator reads it:
// "45m" below an hour, "2h 50m" above
func FormatDurationShort(d time.Duration) string {
	minutes := int((d + 30*time.Second) / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatCountdown renders a countdown value as MM:SS of the absolute value
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
