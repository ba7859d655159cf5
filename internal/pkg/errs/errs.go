package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrDateIsMalformed     = errors.New("date is malformed")
	ErrTransitionIsInvalid = errors.New("transition is invalid")
	ErrConcurrentUpdate    = errors.New("concurrent update conflict")
	ErrPersistence         = errors.New("persistence failure")
)

// Persistence failure reasons.
const (
	ReasonTimeout = "timeout"
	ReasonFailure = "failure"
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports a referenced entity that does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed or inconsistent input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// DateParseError reports a persisted timestamp that cannot be read as a calendar date.
// It marks a data-integrity incident, never a user input problem.
type DateParseError struct {
	Field string
	Value string
	Cause error
}

func NewDateParseError(field, value string) *DateParseError {
	return &DateParseError{Field: field, Value: value}
}

func NewDateParseErrorWithCause(field, value string, cause error) *DateParseError {
	return &DateParseError{Field: field, Value: value, Cause: cause}
}

func (e *DateParseError) Error() string {
	msg := fmt.Sprintf("%s: %s=%q", ErrDateIsMalformed, e.Field, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DateParseError) Unwrap() error {
	return ErrDateIsMalformed
}

// InvalidTransitionError reports a move the order state machine does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionIsInvalid, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// ConflictError reports a lost compare-and-set race. The caller may re-read and retry.
type ConflictError struct {
	Entity string
	ID     any
	Cause  error
}

func NewConflictError(entity string, id any) *ConflictError {
	return &ConflictError{Entity: entity, ID: id}
}

func NewConflictErrorWithCause(entity string, id any, cause error) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrConcurrentUpdate, e.Entity, sanitize(e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConcurrentUpdate
}

// PersistenceError reports an unavailable or timed out store.
type PersistenceError struct {
	Op     string
	Reason string
	Cause  error
}

// NewPersistenceError classifies cause as a timeout when it carries a context deadline.
func NewPersistenceError(op string, cause error) *PersistenceError {
	reason := ReasonFailure
	if errors.Is(cause, context.DeadlineExceeded) {
		reason = ReasonTimeout
	}
	return &PersistenceError{Op: op, Reason: reason, Cause: cause}
}

func (e *PersistenceError) Error() string {
	msg := fmt.Sprintf("%s: %s (reason: %s)", ErrPersistence, e.Op, e.Reason)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}

// IsTimeout reports whether the store call ran past its deadline.
func (e *PersistenceError) IsTimeout() bool {
	return e.Reason == ReasonTimeout
}

// WrapPersistence returns err unchanged when it already carries a known kind,
// otherwise wraps it into a PersistenceError for op.
func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return NewPersistenceError(op, err)
}
