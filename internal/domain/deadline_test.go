package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.October, 15, hour, min, 0, 0, time.Local)
}

func TestActiveLimit(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"morning", at(9, 30), at(13, 0)},
		{"last morning minute", at(12, 59), at(13, 0)},
		{"exactly at 13:00", at(13, 0), at(22, 0)},
		{"evening", at(18, 45), at(22, 0)},
		{"late night", at(23, 30), at(22, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveLimit(tt.ref))
		})
	}
}

func TestClassifyFinish_MorningBlock(t *testing.T) {
	ref := at(12, 0)

	tests := []struct {
		name   string
		finish time.Time
		want   FinishRisk
	}{
		{"well before the window", at(12, 49), RiskOK},
		{"window boundary is still ok", at(12, 50), RiskOK},
		{"inside the window", at(12, 55), RiskWarning},
		{"exactly at the limit", at(13, 0), RiskWarning},
		{"past the limit", at(13, 1), RiskBreach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk, limit := ClassifyFinish(tt.finish, ref)
			assert.Equal(t, tt.want, risk)
			assert.Equal(t, at(13, 0), limit)
		})
	}
}

func TestClassifyFinish_EveningBlock(t *testing.T) {
	ref := at(20, 0)

	risk, limit := ClassifyFinish(at(21, 30), ref)
	assert.Equal(t, RiskOK, risk)
	assert.Equal(t, at(22, 0), limit)

	risk, _ = ClassifyFinish(at(21, 55), ref)
	assert.Equal(t, RiskWarning, risk)

	risk, _ = ClassifyFinish(at(22, 30), ref)
	assert.Equal(t, RiskBreach, risk)
}

func TestFinishRiskLabel(t *testing.T) {
	assert.Equal(t, "OK", RiskOK.Label())
	assert.Equal(t, "AMARILLO", RiskWarning.Label())
	assert.Equal(t, "ROJO", RiskBreach.Label())
}

func TestFormatDurationShort(t *testing.T) {
	assert.Equal(t, "45m", FormatDurationShort(45*time.Minute))
	assert.Equal(t, "2h 50m", FormatDurationShort(170*time.Minute))
	assert.Equal(t, "1h 0m", FormatDurationShort(time.Hour))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "05:30", FormatCountdown(5*time.Minute+30*time.Second))
	assert.Equal(t, "00:05", FormatCountdown(-5*time.Second))
}
