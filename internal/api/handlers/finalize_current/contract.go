package finalize_current

import (
	"context"

	finalizeCurrent "github.com/m04kA/SMC-TurnsService/internal/usecase/finalize_current"
)

type FinalizeCurrentUseCase interface {
	Execute(ctx context.Context) (*finalizeCurrent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
