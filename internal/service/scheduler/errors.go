package scheduler

import "errors"

var (
	// ErrServiceRunning возвращается при попытке запустить услугу,
	// когда кресло уже занято
	ErrServiceRunning = errors.New("scheduler: a service is already running")

	// ErrNoRunningService возвращается при попытке завершить услугу,
	// когда кресло свободно
	ErrNoRunningService = errors.New("scheduler: no service is running")

	// ErrItemNotFound возвращается, когда элемент очереди не найден
	ErrItemNotFound = errors.New("scheduler: queue item not found")

	// ErrNothingReady возвращается, когда нет элемента очереди,
	// готового к явному запуску
	ErrNothingReady = errors.New("scheduler: no queue item is ready to start")
)
