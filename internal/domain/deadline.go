package domain

import "time"

// FinishRisk represents the classification of a projected finish time
// against the shop's active daily cutoff
type FinishRisk string

const (
	RiskOK      FinishRisk = "ok"
	RiskWarning FinishRisk = "warn"
	RiskBreach  FinishRisk = "bad"
)

// Label returns the operator-facing label for the risk class
func (r FinishRisk) Label() string {
	switch r {
	case RiskWarning:
		return "AMARILLO"
	case RiskBreach:
		return "ROJO"
	default:
		return "OK"
	}
}

// ActiveLimit returns the operative cutoff for the given reference time:
// 13:00 of the same calendar day while the reference clock is before 13:00,
// 22:00 otherwise. The two cutoffs encode the shop's split morning/evening
// schedule.
func ActiveLimit(ref time.Time) time.Time {
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	if ref.Hour() < MorningCutoffHour {
		return dayStart.Add(MorningCutoffHour * time.Hour)
	}
	return dayStart.Add(EveningCutoffHour * time.Hour)
}

// ClassifyFinish classifies a projected finish time against the active limit
// for the reference time. Finishes up to WarningWindow before the limit are
// OK, finishes inside the window are WARNING, finishes past the limit are
// BREACH. Returns the applicable limit alongside the class.
//
// Единственная точка, где движок трогает календарную арифметику: остальной
// код работает только с готовой классификацией.
func ClassifyFinish(finish, ref time.Time) (FinishRisk, time.Time) {
	limit := ActiveLimit(ref)
	warningStart := limit.Add(-WarningWindow)

	switch {
	case !finish.After(warningStart):
		return RiskOK, limit
	case !finish.After(limit):
		return RiskWarning, limit
	default:
		return RiskBreach, limit
	}
}
