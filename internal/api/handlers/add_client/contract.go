package add_client

import (
	"context"

	addClient "github.com/m04kA/SMC-TurnsService/internal/usecase/add_client"
)

type AddClientUseCase interface {
	Execute(ctx context.Context, req addClient.Request) (*addClient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
