package queries

import (
	"context"

	"mealbox/internal/core/ports"
	"mealbox/internal/pkg/errs"
)

type (
	// SnapshotManager opens and closes read-only transactions.
	SnapshotManager interface {
		BeginSnapshot(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ReadUoW gives read access to orders and customers. Handlers open it with
	// BeginSnapshot so that all values they derive agree with each other.
	ReadUoW interface {
		SnapshotManager
		OrderRepository() ports.OrderRepository
		CustomerRepository() ports.CustomerRepository
	}

	// ReadUoWFactory creates new read unit of work instances.
	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// readSnapshot runs fn inside a read-only transaction and always closes it.
func readSnapshot(ctx context.Context, factory ReadUoWFactory, fn func(uow ReadUoW) error) error {
	uow := factory.Create()
	if err := uow.BeginSnapshot(ctx); err != nil {
		return errs.WrapPersistence("begin snapshot", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.WrapPersistence("commit snapshot", err)
	}

	return nil
}
