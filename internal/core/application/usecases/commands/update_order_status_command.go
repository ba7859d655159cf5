package commands

import (
	"errors"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand requests moving an order to a new status.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, "processing")
//	if err != nil {
//	    return err // unknown status name
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the order id and parses the requested status.
// Unrecognised status names are rejected here, before any storage access.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
