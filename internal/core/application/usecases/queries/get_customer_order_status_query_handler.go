package queries

import (
	"context"
	"log/slog"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/errs"
)

// GetCustomerOrderStatusQueryHandler resolves a customer by email and classifies their orders.
// An unknown email is an ObjectNotFoundError; a known customer without orders gets an
// empty result.
type GetCustomerOrderStatusQueryHandler struct {
	uowFactory ReadUoWFactory
	classifier services.StatusClassifier
	logger     *slog.Logger
}

// NewGetCustomerOrderStatusQueryHandler creates a handler for customer status lookups.
func NewGetCustomerOrderStatusQueryHandler(
	uowFactory ReadUoWFactory,
	logger *slog.Logger,
) GetCustomerOrderStatusQueryHandler {
	return GetCustomerOrderStatusQueryHandler{
		uowFactory: uowFactory,
		classifier: services.NewStatusClassifier(),
		logger:     logger.With("component", "customer_order_status_query"),
	}
}

// Handle reads the customer and their orders from one snapshot and classifies them.
func (h GetCustomerOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderStatusQuery,
) (GetCustomerOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerOrderStatusQueryResponse{}, err
	}

	var (
		found  *customer.Customer
		orders []*order.Order
	)
	err := readSnapshot(ctx, h.uowFactory, func(uow ReadUoW) error {
		var err error
		found, err = uow.CustomerRepository().GetByEmail(ctx, query.Email())
		if err != nil {
			return errs.WrapPersistence("get customer", err)
		}

		orders, err = uow.OrderRepository().ListByCustomer(ctx, query.Email())
		if err != nil {
			return errs.WrapPersistence("list customer orders", err)
		}
		return nil
	})
	if err != nil {
		return GetCustomerOrderStatusQueryResponse{}, err
	}

	result, err := h.classifier.Classify(orders)
	if err != nil {
		return GetCustomerOrderStatusQueryResponse{}, err
	}

	for _, w := range result.Warnings {
		h.logger.WarnContext(ctx, w.Message, "order_id", w.OrderID.String())
	}

	return GetCustomerOrderStatusQueryResponse{
		Customer: found,
		Stats:    result.Stats,
		Orders:   result.Orders(query.Filter()),
		Warnings: result.Warnings,
	}, nil
}
