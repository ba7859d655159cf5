// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across the customer and order repositories
//   - Read-only REPEATABLE READ snapshots for consistent multi-statement reads
//   - Automatic rollback on transaction failures
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.CustomerRepository().Add(ctx, c); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Consistent Reads:
//
//	uow := factory.Create()
//	if err := uow.BeginSnapshot(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	orders, err := uow.OrderRepository().ListByCustomer(ctx, email)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Status updates are compare-and-set statements, so concurrent writers
//     on the same order observe a ConflictError instead of a lost update
package postgres

import (
	"context"
	"database/sql"

	"mealbox/internal/adapters/out/postgres/customerrepo"
	"mealbox/internal/adapters/out/postgres/orderrepo"
	"mealbox/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := postgres.Open(dsn)
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Implements the Unit of Work pattern using GORM's transaction capabilities
// to ensure data consistency and proper rollback handling.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new read-write transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	return uow.begin(ctx)
}

// BeginSnapshot initiates a read-only REPEATABLE READ transaction. Every read
// made through the repositories until Commit or Rollback sees the same snapshot.
func (uow *GormUnitOfWork) BeginSnapshot(ctx context.Context) error {
	return uow.begin(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (uow *GormUnitOfWork) begin(ctx context.Context, opts ...*sql.TxOptions) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerRepository provides access to customer persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
