package get_settings

import (
	"github.com/m04kA/SMC-TurnsService/internal/service/settings/models"
)

type SettingsService interface {
	Get() *models.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
