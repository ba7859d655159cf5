package queries

import (
	"context"

	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order by id.
type GetOrderQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetOrderQueryHandler creates a handler reading through uowFactory snapshots.
func NewGetOrderQueryHandler(uowFactory ReadUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order or ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, errs.WrapPersistence("get order", err)
	}

	return o, nil
}
