package customerrepo

import (
	"context"
	"errors"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add registers a customer. The unique email index turns a concurrent
// registration of the same address into a ConflictError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("customer", dto.Email, err)
		}
		return errs.NewPersistenceError("add customer", err)
	}

	return nil
}

// GetByEmail retrieves the customer registered with email.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email.String())
		}
		return nil, errs.NewPersistenceError("get customer", err)
	}

	return toDomain(dto)
}
