package queries

import (
	"errors"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order for the admin detail view.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
