// Package customer provides the Customer aggregate: the registered identity that
// status lookups resolve an e-mail address to.
package customer

import (
	"errors"
	"strings"
	"time"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned for a Customer built without its constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered customer. The e-mail address is unique across customers.
type Customer struct {
	id           kernel.UUID
	name         string
	email        kernel.Email
	phone        string
	registeredAt kernel.Timestamp

	isConstructed bool
}

// NewCustomer registers a customer from the contact details of their first order.
//
// Parameters:
//   - id: Unique identifier for the customer
//   - contact: Name and e-mail are required; phone is copied as given
//   - registeredAt: Registration instant, stored in UTC
//
// Returns:
//   - *Customer: The registered customer
//   - error: Joined validation errors when id, name or e-mail is missing
func NewCustomer(id kernel.UUID, contact kernel.Contact, registeredAt time.Time) (*Customer, error) {
	c := &Customer{
		name:          strings.TrimSpace(contact.Name()),
		email:         contact.Email(),
		phone:         contact.Phone(),
		registeredAt:  kernel.NewTimestamp(registeredAt),
		isConstructed: true,
	}

	var nameErr, emailErr error
	if c.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if c.email.IsZero() {
		emailErr = errs.NewValueIsRequiredError("email")
	}

	if err := errors.Join(id.Validate(), nameErr, emailErr); err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email kernel.Email,
	phone string,
	registeredAt kernel.Timestamp,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		registeredAt:  registeredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the normalised e-mail the customer is looked up by.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// RegisteredAt returns when the customer placed their first order.
func (c *Customer) RegisteredAt() kernel.Timestamp {
	return c.registeredAt
}
