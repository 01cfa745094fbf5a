package add_client

import (
	"time"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// Request модель запроса на добавление клиента
type Request struct {
	Service   domain.ServiceType // услуга из фиксированного списка
	Speed     domain.Speed       // скорость работы
	Confirmed bool               // оператор подтвердил выход за лимит
}

// Response модель результата добавления.
// При NeedsConfirmation мутация НЕ применена: оператору показывают
// проекцию и лимит, и он повторяет запрос с Confirmed.
type Response struct {
	NeedsConfirmation bool
	Risk              domain.FinishRisk
	ProjectedFinish   time.Time
	Limit             time.Time
	PlannedMinutes    int

	Queued  bool
	Item    *domain.QueueItem
	Running *domain.RunningService
}
