package get_snapshot

import (
	"context"

	getSnapshot "github.com/m04kA/SMC-TurnsService/internal/usecase/get_snapshot"
)

type GetSnapshotUseCase interface {
	Execute(ctx context.Context) (*getSnapshot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
