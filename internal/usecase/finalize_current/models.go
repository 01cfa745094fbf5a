package finalize_current

import "time"

// Response модель завершенной услуги
type Response struct {
	ID        string
	Service   string
	Speed     string
	StartedAt time.Time
	EndedAt   time.Time
	Actual    time.Duration
}
