package domain

import "time"

// Time format constants
const (
	ClockFormat = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
)

// Shop schedule constants: the shop operates in two daily blocks,
// each closed by a hard cutoff. Finishes inside the warning window
// before the active cutoff are flagged to the operator.
const (
	MorningCutoffHour = 13
	EveningCutoffHour = 22
	WarningWindow     = 10 * time.Minute
)

// MinServiceDuration нижняя граница расчётной длительности услуги
const MinServiceDuration = 1 * time.Minute

// AdjustKeyLentoLargo ключ поправки для медленной работы над длинной услугой
// (базовое время больше LentoLargoThresholdMinutes)
const (
	AdjustKeyLentoLargo        = "LentoLargo"
	LentoLargoThresholdMinutes = 60
)
