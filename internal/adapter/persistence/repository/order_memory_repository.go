package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process memory. Used for local runs
// and tests; contents are lost on restart.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	now    func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		orders: make(map[string]entities.Order),
		now:    time.Now,
	}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; exists {
		return entities.Order{}, fmt.Errorf("order %s already exists", o.ID)
	}
	o = cloneOrder(o)
	r.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneOrder(r.orders[id]), nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	orders := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, cloneOrder(o))
	}
	r.mu.RUnlock()

	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderMemoryRepository) SaveQuote(_ context.Context, id string, q entities.Quote) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o = cloneOrder(quoted(o, q, r.now()))
	r.orders[id] = o
	return cloneOrder(o), nil
}

// cloneOrder copies the slices and pointers of o so stored orders never
// share memory with callers.
func cloneOrder(o entities.Order) entities.Order {
	o.Services = append([]string(nil), o.Services...)
	if o.Quote != nil {
		q := *o.Quote
		q.Items = append([]entities.QuoteItem(nil), q.Items...)
		o.Quote = &q
	}
	if o.QuoteSentAt != nil {
		sentAt := *o.QuoteSentAt
		o.QuoteSentAt = &sentAt
	}
	return o
}
