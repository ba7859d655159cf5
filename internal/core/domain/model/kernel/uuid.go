package kernel

import (
	"mealbox/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is an immutable identifier for aggregates such as orders and customers.
// It wraps github.com/google/uuid; the zero value is invalid.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(c.Param("orderId"))
//	if err != nil {
//	    return err // ValueIsInvalidError
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual forms accepted by uuid.Parse.
// Malformed and nil identifiers are rejected as invalid input.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("invalid UUID format", err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes rebuilds an identifier from its 16 byte form, as stored by the repositories.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("invalid UUID format", err)
	}
	return fromGoogle(id)
}

// MustUUIDFromString is UUIDFromString for literals known to be valid. It panics otherwise.
func MustUUIDFromString(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	result := UUID{id: id}
	if err := result.Validate(); err != nil {
		return UUID{}, err
	}
	return result, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped uuid.UUID, used by the persistence DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the canonical hyphenated form for JSON payloads.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText parses and validates a textual UUID.
func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := UUIDFromString(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
