package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// persistedEntry формат записи журнала в blob.
// Метки времени хранятся в эпохальных миллисекундах, формат совместим
// с журналом, который вело предыдущее поколение приложения.
type persistedEntry struct {
	ID       string `json:"id"`
	Service  string `json:"service"`
	Speed    string `json:"speed"`
	StartTs  int64  `json:"startTs"`
	EndTs    int64  `json:"endTs"`
	ActualMs int64  `json:"actualMs"`
}

// Repository файловый репозиторий журнала выполненных услуг.
// Журнал хранится одним JSON blob (массив записей); каждое сохранение
// полностью перезаписывает файл.
type Repository struct {
	path string
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает журнал целиком.
// Отсутствующий файл означает пустой журнал, не ошибку.
func (r *Repository) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("%w: Load - read file: %v", ErrRead, err)
	}

	var persisted []persistedEntry
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal: %v", ErrDecode, err)
	}

	entries := make([]domain.HistoryEntry, len(persisted))
	for i, p := range persisted {
		entries[i] = domain.HistoryEntry{
			ID:        p.ID,
			Service:   domain.ServiceType(p.Service),
			Speed:     domain.Speed(p.Speed),
			StartedAt: time.UnixMilli(p.StartTs),
			EndedAt:   time.UnixMilli(p.EndTs),
			Actual:    time.Duration(p.ActualMs) * time.Millisecond,
		}
	}

	return entries, nil
}

// Save полностью перезаписывает blob журнала
func (r *Repository) Save(entries []domain.HistoryEntry) error {
	persisted := make([]persistedEntry, len(entries))
	for i, e := range entries {
		persisted[i] = persistedEntry{
			ID:       e.ID,
			Service:  string(e.Service),
			Speed:    string(e.Speed),
			StartTs:  e.StartedAt.UnixMilli(),
			EndTs:    e.EndedAt.UnixMilli(),
			ActualMs: e.Actual.Milliseconds(),
		}
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("%w: Save - create dir: %v", ErrWrite, err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("%w: Save - write file: %v", ErrWrite, err)
	}

	return nil
}
