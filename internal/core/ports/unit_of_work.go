package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new read-write transaction.
	Begin(ctx context.Context) error

	// BeginSnapshot starts a read-only transaction in which every read observes
	// the same committed state.
	BeginSnapshot(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
