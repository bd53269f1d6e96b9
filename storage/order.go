package storage

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lexflow/lexflow-api/models"
)

// OrderRepository contains the methods to use with the service order
// collection. It is the sole mutator of the orders key in the store.
type OrderRepository interface {
	All() []models.ServiceOrder
	Get(id string) (models.ServiceOrder, bool)
	Upsert(order models.ServiceOrder)
	Delete(id string)
}

type orderRepository struct {
	mu     sync.Mutex
	store  *Store
	orders []models.ServiceOrder
}

// NewOrderRepository loads the order collection from the store, falling back
// to the compiled-in seed dataset when nothing usable is persisted.
func NewOrderRepository(store *Store) OrderRepository {
	r := &orderRepository{store: store}
	if !store.Load(OrdersKey, &r.orders) || r.orders == nil {
		r.orders = models.InitialServiceOrders()
	}
	return r
}

func (r *orderRepository) All() []models.ServiceOrder {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ServiceOrder, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out
}

func (r *orderRepository) Get(id string) (models.ServiceOrder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.ServiceOrder{}, false
}

// Upsert replaces the order with the same ID in place, preserving its
// position, or prepends it when absent (newest-first display convention).
func (r *orderRepository) Upsert(order models.ServiceOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order
			r.persist()
			return
		}
	}
	r.orders = append([]models.ServiceOrder{order}, r.orders...)
	r.persist()
}

// Delete removes the order with the given ID; it is a no-op when absent.
func (r *orderRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			r.persist()
			return
		}
	}
}

// persist writes the full collection after every mutation. Callers hold the
// lock. Write failures are logged only: the in-memory collection stays
// authoritative for the life of the process.
func (r *orderRepository) persist() {
	if err := r.store.Save(OrdersKey, r.orders); err != nil {
		zap.S().Errorw("failed to persist orders", "error", err)
	}
}
