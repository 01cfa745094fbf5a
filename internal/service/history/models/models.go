package models

import (
	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// HistoryEntryResponse запись журнала для отображения
type HistoryEntryResponse struct {
	ID            string `json:"id"`
	Service       string `json:"service"`
	Speed         string `json:"speed"`
	StartTs       int64  `json:"startTs"`
	EndTs         int64  `json:"endTs"`
	ActualMs      int64  `json:"actualMs"`
	StartClock    string `json:"startClock"`    // "10:00"
	EndClock      string `json:"endClock"`      // "10:28"
	DurationLabel string `json:"durationLabel"` // "28m", "2h 50m"
}

// HistoryResponse журнал целиком с агрегатами
type HistoryResponse struct {
	TotalServices int                    `json:"totalServices"`
	TotalMs       int64                  `json:"totalMs"`
	TotalLabel    string                 `json:"totalLabel"`
	Entries       []HistoryEntryResponse `json:"entries"`
}

// FromDomainEntry конвертирует domain запись в DTO
func FromDomainEntry(e domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:            e.ID,
		Service:       string(e.Service),
		Speed:         string(e.Speed),
		StartTs:       e.StartedAt.UnixMilli(),
		EndTs:         e.EndedAt.UnixMilli(),
		ActualMs:      e.Actual.Milliseconds(),
		StartClock:    e.StartedAt.Format(domain.ClockFormat),
		EndClock:      e.EndedAt.Format(domain.ClockFormat),
		DurationLabel: domain.FormatDurationShort(e.Actual),
	}
}
