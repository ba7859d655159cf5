package kernel

import (
	"errors"
	"strings"

	"mealbox/internal/pkg/errs"
)

// Contact is the denormalized customer identity copied onto an order when it is placed.
// Later edits of the customer record do not change it.
type Contact struct {
	name    string
	email   Email
	phone   string
	address string
}

// NewContact validates a contact snapshot taken from a creation request.
func NewContact(name string, email Email, phone, address string) (Contact, error) {
	c := Contact{
		name:    strings.TrimSpace(name),
		email:   email,
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}

	var emailErr error
	if email.IsZero() {
		emailErr = errs.NewValueIsRequiredError("email")
	}

	if err := errors.Join(
		requireText("name", c.name),
		emailErr,
		requireText("phone", c.phone),
		requireText("address", c.address),
	); err != nil {
		return Contact{}, err
	}

	return c, nil
}

// RestoreContact rebuilds a persisted snapshot as-is.
func RestoreContact(name string, email Email, phone, address string) Contact {
	return Contact{name: name, email: email, phone: phone, address: address}
}

// Name returns the customer name.
func (c Contact) Name() string {
	return c.name
}

// Email returns the normalised e-mail.
func (c Contact) Email() Email {
	return c.email
}

// Phone returns the phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Contact) Address() string {
	return c.address
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
