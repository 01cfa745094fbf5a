package add_client

import "errors"

var (
	// ErrInvalidService возвращается при услуге вне фиксированного списка
	ErrInvalidService = errors.New("add_client: unknown service type")

	// ErrInvalidSpeed возвращается при скорости вне фиксированного списка
	ErrInvalidSpeed = errors.New("add_client: unknown speed")
)
