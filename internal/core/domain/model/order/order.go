package order

import (
	"errors"
	"fmt"
	"time"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a meal-box order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a contact snapshot with an e-mail
//   - Items are non-empty, each with quantity >= 1 and price >= 0, kept in insertion order
//   - totalAmount and totalQuantity equal the item sums when the order is created
//   - createdAt is captured once, in UTC, and never changes
//   - status changes only through ChangeStatus, following the Status state machine
type Order struct {
	id kernel.UUID

	// contact is a snapshot taken at creation
	contact kernel.Contact

	// items are kept in submission order
	items         []Item
	totalAmount   kernel.Money
	totalQuantity int
	paymentMethod PaymentMethod
	status        Status
	createdAt     kernel.Timestamp
	updatedAt     kernel.Timestamp

	isConstructed bool
}

// NewOrder creates a Pending order and checks every creation invariant.
// All violations are reported together as joined validation errors.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - contact: Customer snapshot; the e-mail is required
//   - items: Non-empty order lines built with NewItem
//   - paymentMethod: One of Cash, Card, BankTransfer
//   - totalAmount: Must equal the sum of quantity × price at MoneyScale
//   - totalQuantity: Must equal the sum of item quantities
//   - createdAt: Creation instant, stored in UTC
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	item, _ := order.NewItem("box-veggie", "Veggie box", 2, kernel.MustMoney("15.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), contact, []order.Item{item},
//	    order.Card, kernel.MustMoney("30.00"), 2, clock.Now())
func NewOrder(
	id kernel.UUID,
	contact kernel.Contact,
	items []Item,
	paymentMethod PaymentMethod,
	totalAmount kernel.Money,
	totalQuantity int,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setContact(contact),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := order.setTotals(totalAmount, totalQuantity); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds a persisted order. Only the identifier is checked: stored
// rows with an unrecognised status or a malformed timestamp are still returned so
// that read paths can report them instead of failing outright.
func RestoreOrder(
	id kernel.UUID,
	contact kernel.Contact,
	items []Item,
	paymentMethod PaymentMethod,
	totalAmount kernel.Money,
	totalQuantity int,
	status Status,
	createdAt kernel.Timestamp,
	updatedAt kernel.Timestamp,
) (*Order, error) {
	order := &Order{
		contact:       contact,
		items:         append([]Item(nil), items...),
		totalAmount:   totalAmount,
		totalQuantity: totalQuantity,
		paymentMethod: paymentMethod,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Contact returns the customer identity captured when the order was placed.
func (o *Order) Contact() kernel.Contact {
	return o.contact
}

// TotalAmount returns the order total, rounded to MoneyScale.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// TotalQuantity returns the number of boxes across all items.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// PaymentMethod returns how the customer pays for the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current status of the order.
// Orders restored with an unrecognised stored value report Unknown.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp as stored.
func (o *Order) CreatedAt() kernel.Timestamp {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change, or CreatedAt if there was none.
func (o *Order) UpdatedAt() kernel.Timestamp {
	return o.updatedAt
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ChangeStatus applies a status transition.
//
// Returns:
//   - (false, nil) when next equals the current status; nothing changes
//   - (true, nil) after an allowed transition; updatedAt is set to at
//   - (false, error) for an invalid target or transition; the order is left unchanged
func (o *Order) ChangeStatus(next Status, at time.Time) (bool, error) {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	o.updatedAt = kernel.NewTimestamp(at)
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setContact(contact kernel.Contact) error {
	if contact.Email().IsZero() {
		return errs.NewValueIsRequiredError("customer email")
	}
	o.contact = contact
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if item.productID == "" {
			return errs.NewValueIsRequiredErrorWithCause("product id", fmt.Errorf("item %d", i))
		}
		if item.quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid", fmt.Errorf("item %d: %d is less than 1", i, item.quantity))
		}
		if item.price.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				"price is invalid", fmt.Errorf("item %d: %s is negative", i, item.price))
		}
		if !item.price.FitsScale() {
			return errs.NewValueIsInvalidErrorWithCause(
				"price is invalid", fmt.Errorf("item %d: %s has more than %d decimal places",
					i, item.price.Decimal(), kernel.MoneyScale))
		}
	}

	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = kernel.NewTimestamp(createdAt)
	o.updatedAt = o.createdAt
	return nil
}

func (o *Order) setTotals(totalAmount kernel.Money, totalQuantity int) error {
	amount, quantity := SumItems(o.items)

	var amountErr, quantityErr error
	if !totalAmount.Equal(amount) {
		amountErr = errs.NewValueIsInvalidErrorWithCause(
			"total amount is invalid", fmt.Errorf("%s does not match items sum %s", totalAmount, amount))
	}
	if totalQuantity != quantity {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"total quantity is invalid", fmt.Errorf("%d does not match items sum %d", totalQuantity, quantity))
	}

	if err := errors.Join(amountErr, quantityErr); err != nil {
		return err
	}

	o.totalAmount = kernel.NewMoney(totalAmount.Decimal().Round(kernel.MoneyScale))
	o.totalQuantity = totalQuantity
	return nil
}
