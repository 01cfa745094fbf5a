package settings

import (
	"errors"
	"sync"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TurnsService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TurnsService/internal/service/settings/models"
)

// Service сервис настроек длительностей.
// Держит актуальный набор правил в памяти и синхронизирует его с файловым
// blob: каждое сохранение полностью перезаписывает файл. Ошибки персистентности
// деградируют до работы in-memory и никогда не валят сессию.
type Service struct {
	mu     sync.RWMutex
	rules  domain.RuleSet
	repo   SettingsRepository
	logger Logger
}

// NewService создает сервис настроек и загружает сохранённый набор правил.
// Отсутствующий или повреждённый blob молча заменяется дефолтами.
func NewService(repo SettingsRepository, logger Logger) *Service {
	s := &Service{
		repo:   repo,
		logger: logger,
	}

	rules, err := repo.Load()
	switch {
	case err == nil:
		rules.MergeDefaults()
		s.rules = rules
		logger.Info("settings: loaded rule set from storage")
	case errors.Is(err, settingsRepo.ErrNotFound):
		s.rules = domain.DefaultRuleSet()
		logger.Info("settings: no stored rule set, using defaults")
	default:
		s.rules = domain.DefaultRuleSet()
		logger.Warn("settings: failed to load rule set, degrading to defaults: %v", err)
	}

	return s
}

// Current возвращает копию актуального набора правил
func (s *Service) Current() domain.RuleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.Clone()
}

// Get возвращает актуальный набор правил в виде DTO
func (s *Service) Get() *models.SettingsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FromDomainRuleSet(s.rules.Clone())
}

// Save применяет и сохраняет новый набор правил.
// Отсутствующие ключи дополняются дефолтами; ошибка записи на диск
// логируется, но набор остаётся применённым в памяти.
func (s *Service) Save(req *models.UpdateSettingsRequest) *models.SettingsResponse {
	rules := req.ToDomainRuleSet()
	rules.MergeDefaults()

	s.mu.Lock()
	s.rules = rules
	snapshot := s.rules.Clone()
	s.mu.Unlock()

	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Error("settings: failed to persist rule set, continuing in-memory: %v", err)
	} else {
		s.logger.Info("settings: rule set saved")
	}

	return models.FromDomainRuleSet(snapshot)
}

// RestoreDefaults восстанавливает встроенные дефолты и сохраняет их
func (s *Service) RestoreDefaults() *models.SettingsResponse {
	defaults := domain.DefaultRuleSet()

	s.mu.Lock()
	s.rules = defaults
	snapshot := s.rules.Clone()
	s.mu.Unlock()

	if err := s.repo.Save(snapshot); err != nil {
		s.logger.Error("settings: failed to persist defaults, continuing in-memory: %v", err)
	} else {
		s.logger.Info("settings: defaults restored")
	}

	return models.FromDomainRuleSet(snapshot)
}
