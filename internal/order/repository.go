package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/halimdz/tech-store-backend/internal/store"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition rejects status changes that leave the
	// pending -> {completed, cancelled} machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Collection is the single canonical namespace for orders. The legacy
// userOrders mirror is not maintained.
const Collection = "orders"

// Fields describes a partial update of customer details after placement.
type Fields struct {
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	CustomerAddress *string `json:"customerAddress,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type Repository interface {
	// Create assigns a fresh id (max existing + 1, never reused), forces the
	// status to pending and stamps the date when missing. It always returns
	// the new id: a storage failure is logged, not surfaced, so placement
	// never blocks the confirmation flow.
	Create(ord Order) int
	// List reads the full collection, falling back to the last-known cached
	// copy when the store read fails.
	List() []Order
	GetByID(id int) (Order, error)
	UpdateStatus(id int, status string) error
	Update(id int, fields Fields) error
	// Delete fails with ErrNotFound for unknown ids, unlike the idempotent
	// product delete: the admin board reports found/not-found explicitly.
	Delete(id int) error
}

// StoreRepository persists orders through the store and keeps a cache both
// for fallback reads and for id assignment when the store is unreachable.
type StoreRepository struct {
	mu    sync.Mutex
	store store.Store
	cache []Order
}

func NewStoreRepository(st store.Store) *StoreRepository {
	r := &StoreRepository{store: st}
	orders, err := r.read()
	if err != nil {
		fmt.Printf("warning: could not load orders: %v\n", err)
		orders = []Order{}
	}
	r.cache = orders
	return r
}

func (r *StoreRepository) read() ([]Order, error) {
	var orders []Order
	if err := r.store.Read(Collection, &orders); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

func (r *StoreRepository) Create(ord Order) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.read()
	if err != nil {
		fmt.Printf("warning: could not read orders before create: %v\n", err)
		orders = copyOrders(r.cache)
	}

	ord.ID = maxID(orders) + 1
	ord.Status = StatusPending
	if ord.Date == "" {
		ord.Date = time.Now().UTC().Format(time.RFC3339)
	}
	orders = append(orders, ord)

	// placement must not fail user-visibly; the cache still carries the
	// order so the admin board and the confirmation page can show it
	if err := r.store.Write(Collection, orders); err != nil {
		fmt.Printf("warning: could not persist order %d: %v\n", ord.ID, err)
	}
	r.cache = orders
	return ord.ID
}

func (r *StoreRepository) List() []Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.read()
	if err != nil {
		fmt.Printf("warning: could not read orders, serving cached copy: %v\n", err)
		return copyOrders(r.cache)
	}
	r.cache = orders
	return copyOrders(orders)
}

func (r *StoreRepository) GetByID(id int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ord := range r.cache {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *StoreRepository) UpdateStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := copyOrders(r.cache)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if orders[i].Status != StatusPending || !ValidStatus(status) || status == StatusPending {
			return ErrInvalidTransition
		}
		orders[i].Status = status
		if err := r.store.Write(Collection, orders); err != nil {
			fmt.Printf("warning: could not persist status of order %d: %v\n", id, err)
			return err
		}
		r.cache = orders
		return nil
	}
	return ErrNotFound
}

func (r *StoreRepository) Update(id int, fields Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := copyOrders(r.cache)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		apply(&orders[i], fields)
		if err := r.store.Write(Collection, orders); err != nil {
			fmt.Printf("warning: could not persist update of order %d: %v\n", id, err)
			return err
		}
		r.cache = orders
		return nil
	}
	return ErrNotFound
}

func (r *StoreRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]Order, 0, len(r.cache))
	found := false
	for _, ord := range r.cache {
		if ord.ID == id {
			found = true
			continue
		}
		orders = append(orders, ord)
	}
	if !found {
		return ErrNotFound
	}
	if err := r.store.Write(Collection, orders); err != nil {
		fmt.Printf("warning: could not persist delete of order %d: %v\n", id, err)
		return err
	}
	r.cache = orders
	return nil
}

func maxID(orders []Order) int {
	max := 0
	for _, ord := range orders {
		if ord.ID > max {
			max = ord.ID
		}
	}
	return max
}

func apply(ord *Order, f Fields) {
	if f.CustomerName != nil {
		ord.CustomerName = *f.CustomerName
	}
	if f.CustomerPhone != nil {
		ord.CustomerPhone = *f.CustomerPhone
	}
	if f.CustomerAddress != nil {
		ord.CustomerAddress = *f.CustomerAddress
	}
	if f.Notes != nil {
		ord.Notes = *f.Notes
	}
}

func copyOrders(in []Order) []Order {
	out := make([]Order, len(in))
	copy(out, in)
	return out
}
