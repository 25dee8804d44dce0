package memory

import (
	"sync"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase/interfaces"
)

// PendingOrderStore keeps in-flight top-up orders in memory.
//
// The live table holds only non-terminal orders. Finalize removes the order
// and moves its terminal status into an immutable side record, so a webhook
// that arrives after finalization maps to AlreadyFinalized instead of
// OrderNotFound. Order ids are never reused within the store's lifetime.
//
// One mutex guards the live table, the per-driver index and the finalized
// record together: every check-then-act (duplicate-pending guard, finalize)
// is atomic relative to concurrent chat requests and webhook deliveries.

type PendingOrderStore struct {
	mu        sync.RWMutex
	orders    map[string]entities.TopupOrder
	byDriver  map[string]string
	finalized map[string]entities.OrderStatus
}

var _ interfaces.IPendingOrderStore = (*PendingOrderStore)(nil)

func NewPendingOrderStore() *PendingOrderStore {
	return &PendingOrderStore{
		orders:    make(map[string]entities.TopupOrder),
		byDriver:  make(map[string]string),
		finalized: make(map[string]entities.OrderStatus),
	}
}

func (s *PendingOrderStore) Insert(order entities.TopupOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.orders[order.OrderID]; taken {
		return interfaces.ErrOrderIDTaken
	}
	if _, taken := s.finalized[order.OrderID]; taken {
		return interfaces.ErrOrderIDTaken
	}
	if _, busy := s.byDriver[order.DriverPhone]; busy {
		return interfaces.ErrDuplicatePending
	}

	s.orders[order.OrderID] = order
	s.byDriver[order.DriverPhone] = order.OrderID
	return nil
}

func (s *PendingOrderStore) Get(orderID string) (entities.TopupOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	return o, ok
}

func (s *PendingOrderStore) GetByDriver(phone string) (entities.TopupOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byDriver[phone]
	if !ok {
		return entities.TopupOrder{}, false
	}
	o, ok := s.orders[id]
	return o, ok
}

func (s *PendingOrderStore) MarkAwaitingConfirmation(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return interfaces.ErrOrderNotFound
	}
	o.Status = entities.StatusPending
	s.orders[orderID] = o
	return nil
}

func (s *PendingOrderStore) Finalize(orderID string, status entities.OrderStatus) (entities.TopupOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.TopupOrder{}, interfaces.ErrOrderNotFound
	}

	delete(s.orders, orderID)
	delete(s.byDriver, o.DriverPhone)
	s.finalized[orderID] = status

	o.Status = status
	return o, nil
}

func (s *PendingOrderStore) FinalizedStatus(orderID string) (entities.OrderStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.finalized[orderID]
	return st, ok
}

func (s *PendingOrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
