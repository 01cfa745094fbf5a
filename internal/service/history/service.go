package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	"github.com/m04kA/SMC-TurnsService/internal/service/history/models"
)

// Service журнал выполненных услуг.
// Канонический порядок в памяти и в blob хронологический (старые в
// начале); интерактивная выдача переворачивает его, экспорт не переворачивает.
// Журнал строго append-only: записи не изменяются и не переставляются.
type Service struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	repo    HistoryRepository
	logger  Logger
}

// NewService создает сервис журнала и загружает сохранённые записи.
// Повреждённый blob деградирует до пустого журнала.
func NewService(repo HistoryRepository, logger Logger) *Service {
	s := &Service{
		repo:   repo,
		logger: logger,
	}

	entries, err := repo.Load()
	if err != nil {
		logger.Warn("history: failed to load log, degrading to empty: %v", err)
		entries = []domain.HistoryEntry{}
	} else {
		logger.Info("history: loaded %d entries", len(entries))
	}
	s.entries = entries

	return s
}

// Record добавляет запись о завершённой услуге в конец журнала.
// Ошибка записи на диск логируется, запись остаётся в памяти.
func (s *Service) Record(entry domain.HistoryEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	snapshot := make([]domain.HistoryEntry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Error("history: failed to persist log, continuing in-memory: %v", err)
	}

	s.logger.Info("history: recorded service=%s, speed=%s, actual=%s",
		entry.Service, entry.Speed, entry.Actual)
}

// List возвращает журнал с агрегатами, новые записи первыми
func (s *Service) List() *models.HistoryResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &models.HistoryResponse{
		TotalServices: len(s.entries),
		TotalMs:       s.totalLocked().Milliseconds(),
		TotalLabel:    domain.FormatDurationShort(s.totalLocked()),
		Entries:       make([]models.HistoryEntryResponse, 0, len(s.entries)),
	}

	for i := len(s.entries) - 1; i >= 0; i-- {
		resp.Entries = append(resp.Entries, models.FromDomainEntry(s.entries[i]))
	}

	return resp
}

// Clear полностью очищает журнал (деструктивно, подтверждает вызывающий)
func (s *Service) Clear() {
	s.mu.Lock()
	cleared := len(s.entries)
	s.entries = []domain.HistoryEntry{}
	s.mu.Unlock()

	if err := s.repo.Save([]domain.HistoryEntry{}); err != nil {
		s.logger.Error("history: failed to persist cleared log: %v", err)
	}

	s.logger.Info("history: cleared %d entries", cleared)
}

// ExportText детерминированный плоский текстовый экспорт журнала
// в хронологическом порядке
func (s *Service) ExportText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Registro (%d servicios) — Total %s\n\n",
		len(s.entries), domain.FormatDurationShort(s.totalLocked()))

	for _, e := range s.entries {
		fmt.Fprintf(&b, "%s (%s) — %s-%s — %s\n",
			e.Service, e.Speed,
			e.StartedAt.Format(domain.ClockFormat),
			e.EndedAt.Format(domain.ClockFormat),
			domain.FormatDurationShort(e.Actual))
	}

	return b.String()
}

// totalLocked суммарное фактическое время всех записей
func (s *Service) totalLocked() time.Duration {
	var total time.Duration
	for _, e := range s.entries {
		total += e.Actual
	}
	return total
}
