package commands

import (
	"context"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies status transitions.
// The transition is validated by the order state machine and persisted as a
// compare-and-set on the status that was read, so two concurrent requests
// never both succeed from the same starting status.
//
// Example:
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTransitionIsInvalid):
//	    // e.g. completed -> processing
//	case errors.Is(err, errs.ErrConcurrentUpdate):
//	    // another request changed the order first; safe to retry
//	case err != nil:
//	    return err
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle moves the order to the requested status and returns it.
// Requesting the current status is a no-op that returns the order without writing.
// On any error the stored order is unchanged.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, errs.WrapPersistence("get order", err)
	}

	expected := current.Status()
	changed, err := current.ChangeStatus(cmd.Status(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return current, nil
	}

	if err = orderRepo.UpdateStatus(ctx, current.ID(), expected, current.Status(), current.UpdatedAt()); err != nil {
		return nil, errs.WrapPersistence("update order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapPersistence("commit order status", err)
	}

	return current, nil
}
