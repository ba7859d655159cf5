package commands

import (
	"errors"
	"fmt"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
	"mealbox/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       kernel.Money
}

// CreateOrderInput carries the raw fields of an order creation request.
// TotalQuantity may be nil, in which case it is computed from the items.
type CreateOrderInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	Items         []OrderItemInput
	TotalAmount   kernel.Money
	TotalQuantity *int
}

// CreateOrderCommand represents a request to place a new meal-box order.
// It holds validated contact details, items and payment method; total consistency
// is checked by the order aggregate when the handler builds it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), CreateOrderInput{
//	    Name: "Jane Doe", Email: "jane@example.com", Phone: "+1 555 0100", Address: "1 Main St",
//	    PaymentMethod: "card",
//	    Items:       []OrderItemInput{{ProductID: "box-veggie", Quantity: 2, Price: kernel.MustMoney("15.00")}},
//	    TotalAmount: kernel.MustMoney("30.00"),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	contact       kernel.Contact
	items         []order.Item
	paymentMethod order.PaymentMethod
	totalAmount   kernel.Money
	totalQuantity int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request fields.
// All field violations except a malformed email are reported together.
func NewCreateOrderCommand(orderID kernel.UUID, input CreateOrderInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setContact(input.Name, input.Email, input.Phone, input.Address),
		orderCommand.setPaymentMethod(input.PaymentMethod),
		orderCommand.setItems(input.Items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.setTotals(input.TotalAmount, input.TotalQuantity)

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Contact returns the customer snapshot copied onto the order.
func (c CreateOrderCommand) Contact() kernel.Contact {
	return c.contact
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// PaymentMethod returns the parsed payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// TotalAmount returns the total declared by the client.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// TotalQuantity returns the declared total quantity, or the item sum when none was declared.
func (c CreateOrderCommand) TotalQuantity() int {
	return c.totalQuantity
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setContact(name, email, phone, address string) error {
	parsedEmail, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}

	contact, err := kernel.NewContact(name, parsedEmail, phone, address)
	if err != nil {
		return err
	}

	c.contact = contact
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	parsed, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}

	c.paymentMethod = parsed
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	for i, in := range inputs {
		item, err := order.NewItem(in.ProductID, in.ProductName, in.Quantity, in.Price)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotals(totalAmount kernel.Money, totalQuantity *int) {
	c.totalAmount = totalAmount

	if totalQuantity != nil {
		c.totalQuantity = *totalQuantity
		return
	}

	_, c.totalQuantity = order.SumItems(c.items)
}
