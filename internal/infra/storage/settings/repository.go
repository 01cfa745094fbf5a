package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// Repository файловый репозиторий настроек длительностей.
// Настройки хранятся одним JSON blob; каждое сохранение полностью
// перезаписывает файл (транзакционность не требуется, писатель один).
type Repository struct {
	path string
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает сохранённый набор правил.
// Отсутствующий файл означает первый запуск (ErrNotFound);
// повреждённый blob возвращает ErrDecode, решение о деградации на дефолты
// принимает вызывающий сервис.
func (r *Repository) Load() (domain.RuleSet, error) {
	var rules domain.RuleSet

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return rules, ErrNotFound
		}
		return rules, fmt.Errorf("%w: Load - read file: %v", ErrRead, err)
	}

	if err := json.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("%w: Load - unmarshal: %v", ErrDecode, err)
	}

	return rules, nil
}

// Save полностью перезаписывает blob настроек
func (r *Repository) Save(rules domain.RuleSet) error {
	data, err := json.MarshalIndent(rules, "", "  ")
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
