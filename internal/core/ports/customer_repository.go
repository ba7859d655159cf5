package ports

import (
	"context"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Email is the natural key: at most one customer exists per normalized email.
type CustomerRepository interface {
	// Add registers a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByEmail retrieves the customer registered with email.
	// Returns ObjectNotFoundError when nobody registered it.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)
}
