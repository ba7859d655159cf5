// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
)

// OrderPage is one page of a status-filtered order listing together with the size
// of the whole filtered set, both read from the same snapshot.
type OrderPage struct {
	Orders     []*order.Order
	TotalCount int
}

// OrderRepository defines the persistence contract for order aggregates.
// Listings are ordered by creation time, oldest first, with the id as a tie breaker.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus moves the stored order from expected to next as one compare-and-set.
	// Returns ObjectNotFoundError when the order is gone and ConflictError when its
	// stored status is no longer expected.
	//
	// Example:
	//   err := repo.UpdateStatus(ctx, o.ID(), order.Pending, order.Processing, kernel.NewTimestamp(now))
	//   if errors.Is(err, errs.ErrConcurrentUpdate) {
	//       // someone else changed the order first; re-read and retry
	//   }
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, next order.Status, updatedAt kernel.Timestamp) error

	// ListByCustomer retrieves every order placed with the given customer email.
	ListByCustomer(ctx context.Context, email kernel.Email) ([]*order.Order, error)

	// ListAll retrieves every order, restricted to one status when status is not nil.
	ListAll(ctx context.Context, status *order.Status) ([]*order.Order, error)

	// ListPage retrieves limit orders starting at offset, restricted to one status when
	// status is not nil. The page and its TotalCount describe the same snapshot.
	ListPage(ctx context.Context, status *order.Status, offset, limit int) (OrderPage, error)
}
