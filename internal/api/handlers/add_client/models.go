package add_client

import (
	"github.com/m04kA/SMC-TurnsService/internal/domain"
	addClient "github.com/m04kA/SMC-TurnsService/internal/usecase/add_client"
)

// AddClientRequest HTTP request model
type AddClientRequest struct {
	Service   string `json:"service"`
	Speed     string `json:"speed"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// RunningPayload текущая услуга в ответе
type RunningPayload struct {
	Service    string `json:"service"`
	Speed      string `json:"speed"`
	StartClock string `json:"startClock"`
	EndClock   string `json:"endClock"`
}

// QueueItemPayload элемент очереди в ответе
type QueueItemPayload struct {
	ID         string `json:"id"`
	Service    string `json:"service"`
	Speed      string `json:"speed"`
	StartClock string `json:"startClock"`
	EndClock   string `json:"endClock"`
}

// AddClientResponse HTTP response model
type AddClientResponse struct {
	Queued            bool              `json:"queued"`
	Risk              string            `json:"risk"`
	RiskLabel         string            `json:"riskLabel"`
	ProjectedEndClock string            `json:"projectedEndClock"`
	PlannedMinutes    int               `json:"plannedMinutes"`
	Running           *RunningPayload   `json:"running,omitempty"`
	Item              *QueueItemPayload `json:"item,omitempty"`
}

// ConfirmationRequiredResponse ответ 409: плановое окончание за лимитом дня,
// оператор должен повторить запрос с confirmed=true
type ConfirmationRequiredResponse struct {
	NeedsConfirmation bool   `json:"needsConfirmation"`
	Message           string `json:"message"`
	ProjectedEndClock string `json:"projectedEndClock"`
	LimitClock        string `json:"limitClock"`
	PlannedMinutes    int    `json:"plannedMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddClientRequest) ToUseCaseRequest() addClient.Request {
	return addClient.Request{
		Service:   domain.ServiceType(r.Service),
		Speed:     domain.Speed(r.Speed),
		Confirmed: r.Confirmed,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addClient.Response) *AddClientResponse {
	out := &AddClientResponse{
		Queued:            resp.Queued,
		Risk:              string(resp.Risk),
		RiskLabel:         resp.Risk.Label(),
		ProjectedEndClock: resp.ProjectedFinish.Format(domain.ClockFormat),
		PlannedMinutes:    resp.PlannedMinutes,
	}

	if resp.Running != nil {
		out.Running = &RunningPayload{
			Service:    string(resp.Running.Service),
			Speed:      string(resp.Running.Speed),
			StartClock: resp.Running.StartedAt.Format(domain.ClockFormat),
			EndClock:   resp.Running.PlannedEnd().Format(domain.ClockFormat),
		}
	}

	if resp.Item != nil {
		out.Item = &QueueItemPayload{
			ID:         resp.Item.ID,
			Service:    string(resp.Item.Service),
			Speed:      string(resp.Item.Speed),
			StartClock: resp.Item.StartAt.Format(domain.ClockFormat),
			EndClock:   resp.Item.EndAt.Format(domain.ClockFormat),
		}
	}

	return out
}
