package memory

import (
	"context"
	"errors"

	"mealbox/internal/core/ports"
)

var (
	// ErrNoActiveTransaction is returned by Commit and Rollback outside of a transaction.
	ErrNoActiveTransaction = errors.New("no active transaction")
	// ErrReadOnlyTransaction is returned for writes inside BeginSnapshot.
	ErrReadOnlyTransaction = errors.New("cannot write in a read-only transaction")
)

type mutation func(*state) error

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for in-memory units of work.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is the in-memory transaction boundary. It is not safe for concurrent use;
// create one per operation.
type UnitOfWork struct {
	store    *Store
	working  *state
	readOnly bool
	pending  []mutation
}

// Begin starts a read-write transaction over a private copy of the store.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.working = uow.store.snapshot()
	uow.readOnly = false
	uow.pending = nil
	return nil
}

// BeginSnapshot starts a read-only transaction over a frozen copy of the store.
func (uow *UnitOfWork) BeginSnapshot(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.working = uow.store.snapshot()
	uow.readOnly = true
	uow.pending = nil
	return nil
}

// Commit replays the recorded writes against the current store state.
// Nothing is applied when any write fails.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}
	defer uow.reset()

	if uow.readOnly || len(uow.pending) == 0 {
		return nil
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	next := uow.store.state.clone()
	for _, apply := range uow.pending {
		if err := apply(next); err != nil {
			return err
		}
	}
	uow.store.state = next

	return nil
}

// Rollback discards the recorded writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}
	uow.reset()
	return nil
}

// CustomerRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{exec: uow}
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{exec: uow}
}

func (uow *UnitOfWork) reset() {
	uow.working = nil
	uow.readOnly = false
	uow.pending = nil
}

// read runs fn on the transaction state, or on the live store under a read lock.
func (uow *UnitOfWork) read(fn func(*state) error) error {
	if uow.working != nil {
		return fn(uow.working)
	}

	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	return fn(uow.store.state)
}

// write applies m to the transaction state and records it for Commit, or applies
// it to the live store immediately when no transaction is active.
func (uow *UnitOfWork) write(m mutation) error {
	if uow.working != nil {
		if uow.readOnly {
			return ErrReadOnlyTransaction
		}
		if err := m(uow.working); err != nil {
			return err
		}
		uow.pending = append(uow.pending, m)
		return nil
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return m(uow.store.state)
}
