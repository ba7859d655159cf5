package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/ports"
	"mealbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
// db may be a plain connection or a transaction opened by the unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", aggregate.ID().String(), err)
		}
		return errs.NewPersistenceError("add order", err)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewPersistenceError("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatus sets the status only while it still equals expected.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
	updatedAt kernel.Timestamp,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     next.String(),
			"updated_at": updatedAt.String(),
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update order status", result.Error)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return errs.NewPersistenceError("update order status", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return errs.NewConflictError("order", id.String())
}

// ListByCustomer retrieves every order placed with email, oldest first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, email kernel.Email) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("customer_email = ?", email.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list customer orders", err)
	}

	return toDomainList(dtos)
}

// ListAll retrieves every order, optionally restricted to one status, oldest first.
func (r *GormOrderRepository) ListAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Scopes(byStatus(status)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}

	return toDomainList(dtos)
}

// ListPage counts the filtered orders and reads one page of them in a single
// repeatable-read transaction. Inside an outer transaction it runs as a savepoint
// and relies on the outer snapshot.
func (r *GormOrderRepository) ListPage(
	ctx context.Context,
	status *order.Status,
	offset, limit int,
) (ports.OrderPage, error) {
	var (
		total int64
		dtos  []OrderDTO
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&OrderDTO{}).Scopes(byStatus(status)).Count(&total).Error; err != nil {
			return err
		}

		return tx.Preload("Items", orderedItems).
			Scopes(byStatus(status)).
			Order("created_at, id").
			Offset(offset).
			Limit(limit).
			Find(&dtos).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return ports.OrderPage{}, errs.NewPersistenceError("list order page", err)
	}

	orders, err := toDomainList(dtos)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{Orders: orders, TotalCount: int(total)}, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", orderedItems)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func byStatus(status *order.Status) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("status = ?", status.String())
	}
}
