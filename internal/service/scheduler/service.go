package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

// Service движок планирования: владеет единственным слотом текущей услуги
// и очередью ожидающих клиентов. Все переходы состояния синхронны и
// атомарны относительно друг друга (один mutex); очередь пересчитывается
// после каждой мутации и на периодическом тике.
type Service struct {
	mu      sync.Mutex
	queue   []*domain.QueueItem
	running *domain.RunningService

	tickInterval time.Duration
	stopTick     chan struct{}

	timeProvider TimeProvider
	notifier     Notifier
	logger       Logger
}

// NewService создает новый экземпляр движка планирования.
// tickInterval задает период быстрого тика обратного отсчёта; значение <= 0
// отключает внутренний таймер (тогда Tick вызывается снаружи, например
// из тестов).
func NewService(tickInterval time.Duration, notifier Notifier, logger Logger) *Service {
	return &Service{
		queue:        make([]*domain.QueueItem, 0),
		tickInterval: tickInterval,
		timeProvider: &RealTimeProvider{},
		notifier:     notifier,
		logger:       logger,
	}
}

// IsRunning возвращает true, если кресло занято
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running != nil
}

// Add добавляет клиента: если кресло занято, ставит в конец очереди,
// если свободно, запускает услугу немедленно. Ветвление выполняется
// под одним захватом mutex, чтобы инвариант "не более одной текущей
// услуги" не нарушался гонкой между проверкой и действием.
func (s *Service) Add(service domain.ServiceType, speed domain.Speed, planned time.Duration) *AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()

	if s.running != nil {
		item := &domain.QueueItem{
			ID:       uuid.NewString(),
			Service:  service,
			Speed:    speed,
			Duration: planned,
		}
		s.queue = append(s.queue, item)
		s.reflowLocked(now)

		s.logger.Info("Add: queued item id=%s, service=%s, speed=%s, planned=%s, position=%d",
			item.ID, service, speed, planned, len(s.queue))

		itemCopy := *item
		return &AddResult{Queued: true, Item: &itemCopy}
	}

	s.startLocked(service, speed, planned, now)

	runningCopy := *s.running
	return &AddResult{Queued: false, Running: &runningCopy}
}

// StartNextReady явно запускает готовый элемент очереди: снимает его с
// очереди и переводит в слот текущей услуги, повторно используя уже
// рассчитанную длительность. Готовность выставляет только Finalize.
func (s *Service) StartNextReady() (*domain.RunningService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running != nil {
		return nil, ErrServiceRunning
	}

	idx := -1
	for i, item := range s.queue {
		if item.Ready {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNothingReady
	}

	item := s.queue[idx]
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)

	now := s.timeProvider.Now()
	s.startLocked(item.Service, item.Speed, item.Duration, now)

	s.logger.Info("StartNextReady: promoted item id=%s, service=%s, speed=%s",
		item.ID, item.Service, item.Speed)

	runningCopy := *s.running
	return &runningCopy, nil
}

// FinalizeCurrent завершает текущую услугу: формирует запись журнала с
// фактически затраченным временем, освобождает слот, останавливает
// быстрый тик, пересчитывает очередь и помечает её новый головной элемент
// готовым к явному запуску (автозапуска нет).
func (s *Service) FinalizeCurrent() (*domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running == nil {
		// завершение на свободном кресле: защищённый no-op
		return nil, ErrNoRunningService
	}

	now := s.timeProvider.Now()
	entry := &domain.HistoryEntry{
		ID:        uuid.NewString(),
		Service:   s.running.Service,
		Speed:     s.running.Speed,
		StartedAt: s.running.StartedAt,
		EndedAt:   now,
		Actual:    now.Sub(s.running.StartedAt),
	}

	s.logger.Info("FinalizeCurrent: finalized service=%s, speed=%s, planned=%s, actual=%s",
		entry.Service, entry.Speed, s.running.Planned, entry.Actual)

	s.running = nil
	s.stopTickLocked()
	s.reflowLocked(now)

	if len(s.queue) > 0 {
		s.queue[0].Ready = true
		s.logger.Info("FinalizeCurrent: front item id=%s marked ready", s.queue[0].ID)
	}

	return entry, nil
}

// Remove удаляет элемент очереди по идентификатору (в любой позиции).
// Признак готовности удалённого элемента сбрасывается вместе с ним,
// на замену никто не повышается.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, item := range s.queue {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrItemNotFound
	}

	wasReady := s.queue[idx].Ready
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	s.reflowLocked(s.timeProvider.Now())

	s.logger.Info("Remove: removed item id=%s (ready=%t), queue length=%d", id, wasReady, len(s.queue))
	return nil
}

// Tick один шаг обратного отсчёта. Не меняет состояние, кроме одноразовой
// защёлки уведомления: первый тик с отрицательным остатком генерирует
// событие перехода в overtime ровно один раз за запуск.
func (s *Service) Tick() {
	s.mu.Lock()

	if s.running == nil {
		s.mu.Unlock()
		return
	}

	now := s.timeProvider.Now()
	remaining := s.running.Remaining(now)

	if remaining < 0 && !s.running.OvertimeNotified {
		s.running.OvertimeNotified = true
		service, speed, overBy := s.running.Service, s.running.Speed, -remaining
		s.mu.Unlock()

		s.logger.Warn("Tick: service=%s went into overtime by %s", service, overBy)
		if s.notifier != nil {
			s.notifier.OvertimeStarted(service, speed, overBy)
		}
		return
	}

	s.mu.Unlock()
}

// ReflowNow пересчитывает проекции очереди от свежего текущего времени.
// Вызывается медленным тиком, чтобы отображаемые времена ожидания не
// устаревали, даже когда ничего не происходит.
func (s *Service) ReflowNow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflowLocked(s.timeProvider.Now())
}

// ProjectedFinishWith возвращает проекцию момента окончания после
// гипотетического добавления услуги указанной длительности в конец
// очереди, вместе с использованным "сейчас"
func (s *Service) ProjectedFinishWith(extra time.Duration) (time.Time, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	s.reflowLocked(now)
	return s.lastPlannedEndLocked(now).Add(extra), now
}

// Snapshot возвращает согласованный снимок состояния движка
func (s *Service) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	s.reflowLocked(now)

	snap := &Snapshot{
		Now:            now,
		Queue:          make([]domain.QueueItem, len(s.queue)),
		LastPlannedEnd: s.lastPlannedEndLocked(now),
	}
	for i, item := range s.queue {
		snap.Queue[i] = *item
	}
	if s.running != nil {
		runningCopy := *s.running
		snap.Running = &runningCopy
	}

	return snap
}

// RunReflowLoop запускает цикл медленного тика до закрытия stop канала
func (s *Service) RunReflowLoop(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.ReflowNow()
		case <-stop:
			return
		}
	}
}

// startLocked занимает слот текущей услуги. Вызывается под mutex.
func (s *Service) startLocked(service domain.ServiceType, speed domain.Speed, planned time.Duration, now time.Time) {
	s.running = &domain.RunningService{
		Service:          service,
		Speed:            speed,
		StartedAt:        now,
		Planned:          planned,
		OvertimeNotified: false,
	}
	s.startTickLocked()
	s.reflowLocked(now)

	s.logger.Info("start: service=%s, speed=%s, planned=%s, ends=%s",
		service, speed, planned, s.running.PlannedEnd().Format(domain.ClockFormat))
}

// reflowLocked строгая FIFO-цепочка: курсор стартует с планового конца
// текущей услуги (или с "сейчас" при свободном кресле) и последовательно
// раздаёт каждому элементу очереди проекции начала и конца. Никакого
// переупорядочивания и параллельных слотов.
func (s *Service) reflowLocked(now time.Time) {
	cursor := now
	if s.running != nil {
		cursor = s.running.PlannedEnd()
	}

	for _, item := range s.queue {
		item.StartAt = cursor
		item.EndAt = cursor.Add(item.Duration)
		cursor = item.EndAt
	}
}

// lastPlannedEndLocked конец последнего запланированного дела:
// хвост очереди, иначе плановый конец текущей услуги, иначе "сейчас"
func (s *Service) lastPlannedEndLocked(now time.Time) time.Time {
	if len(s.queue) > 0 {
		return s.queue[len(s.queue)-1].EndAt
	}
	if s.running != nil {
		return s.running.PlannedEnd()
	}
	return now
}

// startTickLocked запускает быстрый тик обратного отсчёта (если настроен)
func (s *Service) startTickLocked() {
	if s.tickInterval <= 0 || s.stopTick != nil {
		return
	}

	stop := make(chan struct{})
	s.stopTick = stop

	go func() {
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-stop:
				return
			}
		}
	}()
}

// stopTickLocked останавливает быстрый тик; повторный вызов безопасен
func (s *Service) stopTickLocked() {
	if s.stopTick == nil {
		return
	}
	close(s.stopTick)
	s.stopTick = nil
}
