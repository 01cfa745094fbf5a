package get_snapshot

import "time"

// RunningView текущая услуга для отображения оператору
type RunningView struct {
	Service     string    `json:"service"`
	Speed       string    `json:"speed"`
	StartedAt   time.Time `json:"startedAt"`
	PlannedEnd  time.Time `json:"plannedEnd"`
	EndClock    string    `json:"endClock"`
	RemainingMs int64     `json:"remainingMs"`
	Countdown   string    `json:"countdown"`
	Progress    float64   `json:"progress"`
	Overtime    bool      `json:"overtime"`
}

// QueueItemView элемент очереди для отображения
type QueueItemView struct {
	ID          string    `json:"id"`
	Service     string    `json:"service"`
	Speed       string    `json:"speed"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	StartClock  string    `json:"startClock"`
	EndClock    string    `json:"endClock"`
	WaitMinutes int       `json:"waitMinutes"`
	Ready       bool      `json:"ready"`
	IsNext      bool      `json:"isNext"`
}

// RiskView классификация последнего планового окончания против лимита дня
type RiskView struct {
	Level      string    `json:"level"`
	Label      string    `json:"label"`
	Limit      time.Time `json:"limit"`
	LimitClock string    `json:"limitClock"`
}

// Response агрегированное состояние движка
type Response struct {
	Now     time.Time       `json:"now"`
	Running *RunningView    `json:"running,omitempty"`
	Queue   []QueueItemView `json:"queue"`
	Risk    RiskView        `json:"risk"`
}
