package memory

import (
	"context"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/ports"
	"mealbox/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on a Store.
type OrderRepository struct {
	exec *UnitOfWork
}

// Add saves a new order.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewPersistenceError("add order", err)
	}

	record := orderFromDomain(aggregate)
	return r.exec.write(func(s *state) error {
		if _, ok := s.orders[record.id]; ok {
			return errs.NewConflictError("order", record.id.String())
		}
		s.orders[record.id] = record
		return nil
	})
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewPersistenceError("get order", err)
	}

	var record orderRecord
	err := r.exec.read(func(s *state) error {
		found, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record.toDomain()
}

// UpdateStatus moves an order from expected to next.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
	updatedAt kernel.Timestamp,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewPersistenceError("update order status", err)
	}

	return r.exec.write(func(s *state) error {
		record, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		if record.status != expected {
			return errs.NewConflictError("order", id.String())
		}
		record.status = next
		record.updatedAt = updatedAt
		s.orders[id] = record
		return nil
	})
}

// ListByCustomer retrieves every order placed with email.
func (r *OrderRepository) ListByCustomer(ctx context.Context, email kernel.Email) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewPersistenceError("list customer orders", err)
	}

	var records []orderRecord
	_ = r.exec.read(func(s *state) error {
		records = s.sortedOrders(func(o orderRecord) bool {
			return o.contact.Email().IsEqual(email)
		})
		return nil
	})

	return toDomainOrders(records)
}

// ListAll retrieves every order, optionally restricted to one status.
func (r *OrderRepository) ListAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}

	var records []orderRecord
	_ = r.exec.read(func(s *state) error {
		records = s.sortedOrders(matchStatus(status))
		return nil
	})

	return toDomainOrders(records)
}

// ListPage retrieves one page of orders; count and page come from one locked read.
func (r *OrderRepository) ListPage(
	ctx context.Context,
	status *order.Status,
	offset, limit int,
) (ports.OrderPage, error) {
	if err := ctx.Err(); err != nil {
		return ports.OrderPage{}, errs.NewPersistenceError("list order page", err)
	}

	var (
		records []orderRecord
		total   int
	)
	_ = r.exec.read(func(s *state) error {
		all := s.sortedOrders(matchStatus(status))
		total = len(all)
		records = window(all, offset, limit)
		return nil
	})

	orders, err := toDomainOrders(records)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{Orders: orders, TotalCount: total}, nil
}

func matchStatus(status *order.Status) func(orderRecord) bool {
	return func(o orderRecord) bool {
		return status == nil || o.status == *status
	}
}

func window(records []orderRecord, offset, limit int) []orderRecord {
	if offset < 0 || offset >= len(records) || limit <= 0 {
		return []orderRecord{}
	}
	if limit > len(records)-offset {
		return records[offset:]
	}
	return records[offset : offset+limit]
}
