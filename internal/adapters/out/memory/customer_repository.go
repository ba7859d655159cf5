package memory

import (
	"context"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"
)

// CustomerRepository implements ports.CustomerRepository on a Store.
type CustomerRepository struct {
	exec *UnitOfWork
}

// Add registers a customer. A second customer with the same email is a ConflictError.
func (r *CustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewPersistenceError("add customer", err)
	}

	record := customerFromDomain(aggregate)
	return r.exec.write(func(s *state) error {
		if _, ok := s.customers[record.email.String()]; ok {
			return errs.NewConflictError("customer", record.email.String())
		}
		s.customers[record.email.String()] = record
		return nil
	})
}

// GetByEmail retrieves the customer registered with email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewPersistenceError("get customer", err)
	}

	var record customerRecord
	err := r.exec.read(func(s *state) error {
		found, ok := s.customers[email.String()]
		if !ok {
			return errs.NewObjectNotFoundError("email", email.String())
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record.toDomain()
}
