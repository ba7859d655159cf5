package queries

import (
	"errors"
	"strings"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderStatusQueryIsNotConstructed = errors.New(
		"GetCustomerOrderStatusQuery must be created via NewGetCustomerOrderStatusQuery constructor",
	)
)

// GetCustomerOrderStatusQuery looks up a customer's orders by email, optionally
// narrowed to one status bucket.
//
// Example:
//
//	query, err := NewGetCustomerOrderStatusQuery("jane@example.com", "processing")
//	if err != nil {
//	    return err // malformed email or unknown filter
//	}
//	result, err := handler.Handle(ctx, query)
type GetCustomerOrderStatusQuery struct {
	email  kernel.Email
	filter *services.StatusBucket

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderStatusQuery validates the email and the optional status filter.
// An empty filter means no narrowing.
func NewGetCustomerOrderStatusQuery(email, statusFilter string) (GetCustomerOrderStatusQuery, error) {
	parsedEmail, emailErr := kernel.NewEmail(email)

	var (
		filter    *services.StatusBucket
		filterErr error
	)
	if strings.TrimSpace(statusFilter) != "" {
		bucket, err := services.ParseStatusBucket(statusFilter)
		filter, filterErr = &bucket, err
	}

	if err := errors.Join(emailErr, filterErr); err != nil {
		return GetCustomerOrderStatusQuery{}, err
	}

	return GetCustomerOrderStatusQuery{
		email:  parsedEmail,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderStatusQueryIsNotConstructed)
}

// Email returns the normalised customer e-mail.
func (q GetCustomerOrderStatusQuery) Email() kernel.Email {
	return q.email
}

// Filter returns the requested bucket, or nil when all orders are requested.
func (q GetCustomerOrderStatusQuery) Filter() *services.StatusBucket {
	return q.filter
}

// GetCustomerOrderStatusQueryResponse is the status overview shown to a customer.
// Stats always describe every order of the customer, even when Orders is narrowed.
type GetCustomerOrderStatusQueryResponse struct {
	Customer *customer.Customer
	Stats    services.ClassificationStats
	Orders   []*order.Order
	Warnings []services.ClassificationWarning
}
