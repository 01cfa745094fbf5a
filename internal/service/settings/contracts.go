package settings

import "github.com/m04kA/SMC-TurnsService/internal/domain"

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Load() (domain.RuleSet, error)
	Save(rules domain.RuleSet) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
