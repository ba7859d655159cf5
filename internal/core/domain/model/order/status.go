package order

import (
	"fmt"
	"strings"

	"mealbox/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │            │
//	   └────────────┴────────> Cancelled
//
// Completed and Cancelled are terminal. Moving to the current state is a no-op.
type Status int

const (
	// Unknown stands for a stored value this service does not recognise.
	// It is tolerated on read paths and never produced by a transition.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Processing means the kitchen accepted the order.
	Processing

	// Completed means the box was delivered. Terminal.
	Completed

	// Cancelled means the order was abandoned before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions lists the allowed moves out of each non-terminal status.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
	}
}

// ParseStatus reads a status name at the API boundary. Unrecognised names are rejected.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// StatusFromStored reads a persisted status name. Unrecognised names become Unknown
// so that reporting keeps working over a few malformed rows.
func StatusFromStored(s string) Status {
	status, err := ParseStatus(s)
	if err != nil {
		return Unknown
	}
	return status
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case wire and storage name, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether TransitionTo(next) would succeed.
func (s Status) CanTransitionTo(next Status) bool {
	_, err := s.TransitionTo(next)
	return err == nil
}

// TransitionTo validates a move from s to next and returns the resulting status.
//
// Returns:
//   - (s, nil) when next equals s, for any valid s including terminal ones
//   - (next, nil) for an allowed transition
//   - ValueIsInvalidError when next is not a valid status
//   - InvalidTransitionError for every other move
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}

	if s == next {
		return s, nil
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return s, errs.NewInvalidTransitionError(s, next)
}

// MarshalText renders the storage name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name strictly.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
