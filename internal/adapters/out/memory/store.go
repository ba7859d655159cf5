// Package memory provides in-process implementations of the repository ports.
//
// All data lives in one Store guarded by a read-write mutex. A unit of work that
// began a read-write transaction works on a private copy of the state and records
// every write; Commit replays the writes against the current state under the write
// lock and swaps the result in only when all of them succeed. A compare-and-set that
// lost a race therefore fails at Commit with ConflictError. BeginSnapshot copies the
// state once so that every read of the unit of work sees the same data.
package memory

import (
	"sort"
	"sync"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
)

// Store holds customers and orders for every unit of work created from it.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

type customerRecord struct {
	id           kernel.UUID
	name         string
	email        kernel.Email
	phone        string
	registeredAt kernel.Timestamp
}

type orderRecord struct {
	id            kernel.UUID
	contact       kernel.Contact
	items         []order.Item
	totalAmount   kernel.Money
	totalQuantity int
	paymentMethod order.PaymentMethod
	status        order.Status
	createdAt     kernel.Timestamp
	updatedAt     kernel.Timestamp
}

type state struct {
	customers map[string]customerRecord
	orders    map[kernel.UUID]orderRecord
}

func newState() *state {
	return &state{
		customers: make(map[string]customerRecord),
		orders:    make(map[kernel.UUID]orderRecord),
	}
}

// clone copies the maps; records are values and their item slices are never mutated.
func (s *state) clone() *state {
	c := &state{
		customers: make(map[string]customerRecord, len(s.customers)),
		orders:    make(map[kernel.UUID]orderRecord, len(s.orders)),
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	return c
}

// sortedOrders returns the records matching keep, oldest first.
func (s *state) sortedOrders(keep func(orderRecord) bool) []orderRecord {
	records := make([]orderRecord, 0, len(s.orders))
	for _, r := range s.orders {
		if keep(r) {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].createdAt.String() != records[j].createdAt.String() {
			return records[i].createdAt.String() < records[j].createdAt.String()
		}
		return records[i].id.String() < records[j].id.String()
	})
	return records
}

func customerFromDomain(c *customer.Customer) customerRecord {
	return customerRecord{
		id:           c.ID(),
		name:         c.Name(),
		email:        c.Email(),
		phone:        c.Phone(),
		registeredAt: c.RegisteredAt(),
	}
}

func (r customerRecord) toDomain() (*customer.Customer, error) {
	return customer.RestoreCustomer(r.id, r.name, r.email, r.phone, r.registeredAt)
}

func orderFromDomain(o *order.Order) orderRecord {
	return orderRecord{
		id:            o.ID(),
		contact:       o.Contact(),
		items:         o.Items(),
		totalAmount:   o.TotalAmount(),
		totalQuantity: o.TotalQuantity(),
		paymentMethod: o.PaymentMethod(),
		status:        o.Status(),
		createdAt:     o.CreatedAt(),
		updatedAt:     o.UpdatedAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.contact, r.items, r.paymentMethod,
		r.totalAmount, r.totalQuantity, r.status, r.createdAt, r.updatedAt)
}

func toDomainOrders(records []orderRecord) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(records))
	for _, r := range records {
		o, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
