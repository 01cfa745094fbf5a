package finalize_current

import "errors"

var (
	// ErrNoRunningService нет текущей услуги для завершения
	ErrNoRunningService = errors.New("finalize_current: no running service")
)
