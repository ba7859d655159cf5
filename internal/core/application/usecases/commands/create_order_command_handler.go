package commands

import (
	"context"
	"errors"
	"time"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Registers the customer on their first order and stores the order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), input)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Status() == order.Pending
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a clock for createdAt.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// The customer lookup, customer registration and order insert share one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Contact(),
		cmd.Items(),
		cmd.PaymentMethod(),
		cmd.TotalAmount(),
		cmd.TotalQuantity(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.ensureCustomer(ctx, uow, cmd.Contact(), now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, errs.WrapPersistence("add order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapPersistence("commit order", err)
	}

	return created, nil
}

func (h CreateOrderCommandHandler) ensureCustomer(
	ctx context.Context,
	uow UoW,
	contact kernel.Contact,
	now time.Time,
) error {
	customerRepo := uow.CustomerRepository()

	_, err := customerRepo.GetByEmail(ctx, contact.Email())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return errs.WrapPersistence("get customer", err)
	}

	registered, err := customer.NewCustomer(kernel.NewUUID(), contact, now)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, registered); err != nil {
		return errs.WrapPersistence("add customer", err)
	}

	return nil
}
