package errs

import "errors"

// Kind is the machine-readable error category surfaced to transports.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindDateParse         Kind = "date_parse"
	KindInvalidTransition Kind = "invalid_transition"
	KindConflict          Kind = "conflict"
	KindPersistence       Kind = "persistence"
	KindInternal          Kind = "internal"
)

// KindOf maps err to its Kind. Errors outside of this package map to KindInternal.
// Joined errors take the kind of their first recognised member, with the
// precedence below.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, ErrConcurrentUpdate):
		return KindConflict
	case errors.Is(err, ErrDateIsMalformed):
		return KindDateParse
	case errors.Is(err, ErrTransitionIsInvalid):
		return KindInvalidTransition
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindValidation
	default:
		return KindInternal
	}
}

// IsRetryable reports whether repeating the operation may succeed without changing the input.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindConflict, KindPersistence:
		return true
	default:
		return false
	}
}
