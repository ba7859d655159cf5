package queries

import (
	"context"
	"errors"
	"log/slog"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/core/ports"
	"mealbox/internal/pkg/errs"
)

// ListOrdersQueryHandler serves the admin order listing.
//
// Without a date range the page and the total count are read by the repository
// inside one snapshot. With a date range the status-filtered set is read once,
// bucketed against a single evaluation instant and paginated in memory, so the
// count and the page still describe the same data.
type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewListOrdersQueryHandler creates a handler for admin listings.
func NewListOrdersQueryHandler(uowFactory ReadUoWFactory, clock kernel.Clock, logger *slog.Logger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "list_orders_query"),
	}
}

// Handle returns the requested page. A page past the end is empty, not an error.
// A stored order with a malformed createdAt fails a date-filtered listing with DateParseError.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var (
		page ports.OrderPage
		err  error
	)
	if query.DateRange() == nil {
		page, err = h.readPage(ctx, query)
	} else {
		page, err = h.readBucketedPage(ctx, query)
	}
	if err != nil {
		if errors.Is(err, errs.ErrDateIsMalformed) {
			h.logger.ErrorContext(ctx, "Stored order has a malformed creation date", "error", err)
		}
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items:      page.Orders,
		TotalCount: page.TotalCount,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		PageCount:  PageCount(page.TotalCount, query.PageSize()),
	}, nil
}

func (h ListOrdersQueryHandler) readPage(ctx context.Context, query ListOrdersQuery) (ports.OrderPage, error) {
	var page ports.OrderPage
	err := readSnapshot(ctx, h.uowFactory, func(uow ReadUoW) error {
		var err error
		page, err = uow.OrderRepository().ListPage(ctx, query.Status(), query.Offset(), query.PageSize())
		if err != nil {
			return errs.WrapPersistence("list order page", err)
		}
		return nil
	})
	return page, err
}

func (h ListOrdersQueryHandler) readBucketedPage(ctx context.Context, query ListOrdersQuery) (ports.OrderPage, error) {
	var all []*order.Order
	err := readSnapshot(ctx, h.uowFactory, func(uow ReadUoW) error {
		var err error
		all, err = uow.OrderRepository().ListAll(ctx, query.Status())
		if err != nil {
			return errs.WrapPersistence("list orders", err)
		}
		return nil
	})
	if err != nil {
		return ports.OrderPage{}, err
	}

	selected, err := services.NewDateBucketer(h.clock.Now()).Filter(*query.DateRange(), all)
	if err != nil {
		return ports.OrderPage{}, err
	}

	return ports.OrderPage{
		Orders:     paginate(selected, query.Offset(), query.PageSize()),
		TotalCount: len(selected),
	}, nil
}

func paginate(orders []*order.Order, offset, limit int) []*order.Order {
	if offset < 0 || offset >= len(orders) || limit <= 0 {
		return []*order.Order{}
	}
	if limit > len(orders)-offset {
		return orders[offset:]
	}
	return orders[offset : offset+limit]
}
