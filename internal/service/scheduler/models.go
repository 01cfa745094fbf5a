package scheduler

import (
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// AddResult результат операции добавления клиента:
// либо услуга запущена сразу (кресло было свободно),
// либо клиент поставлен в очередь (кресло занято)
type AddResult struct {
	Queued  bool
	Item    *domain.QueueItem      // заполнен, если клиент поставлен в очередь
	Running *domain.RunningService // заполнен, если услуга запущена сразу
}

// Snapshot согласованный снимок состояния движка на один момент времени.
// Все вложенные значения являются копиями: читатель не может повлиять на движок.
type Snapshot struct {
	Now            time.Time
	Running        *domain.RunningService
	Queue          []domain.QueueItem
	LastPlannedEnd time.Time
}
