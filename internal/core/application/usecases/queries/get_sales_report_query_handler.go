package queries

import (
	"context"
	"errors"
	"log/slog"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/errs"
)

// GetSalesReportQueryHandler builds the sales report from one snapshot of all orders
// and one evaluation instant, so the four periods are consistent with each other.
//
// Example:
//
//	report, err := handler.Handle(ctx, NewGetSalesReportQuery())
//	if err != nil {
//	    return err
//	}
//	for _, p := range report.Periods {
//	    fmt.Printf("%s: %s from %d completed orders\n", p.Period, p.Revenue, p.Completed)
//	}
type GetSalesReportQueryHandler struct {
	uowFactory ReadUoWFactory
	clock      kernel.Clock
	classifier services.StatusClassifier
	logger     *slog.Logger
}

// NewGetSalesReportQueryHandler creates a handler for sales reports.
func NewGetSalesReportQueryHandler(
	uowFactory ReadUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
		classifier: services.NewStatusClassifier(),
		logger:     logger.With("component", "sales_report_query"),
	}
}

// Handle computes the report. A malformed createdAt on any order fails the whole
// report with DateParseError; unrecognised statuses only produce warnings.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	var all []*order.Order
	err := readSnapshot(ctx, h.uowFactory, func(uow ReadUoW) error {
		var err error
		all, err = uow.OrderRepository().ListAll(ctx, nil)
		if err != nil {
			return errs.WrapPersistence("list orders", err)
		}
		return nil
	})
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	now := h.clock.Now()
	buckets, err := services.NewDateBucketer(now).Partition(all)
	if err != nil {
		if errors.Is(err, errs.ErrDateIsMalformed) {
			h.logger.ErrorContext(ctx, "Stored order has a malformed creation date", "error", err)
		}
		return GetSalesReportQueryResponse{}, err
	}

	overall, err := h.classifier.Classify(all)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}
	for _, w := range overall.Warnings {
		h.logger.WarnContext(ctx, w.Message, "order_id", w.OrderID.String())
	}

	response := GetSalesReportQueryResponse{
		GeneratedAt: now,
		Periods:     make([]PeriodSales, 0, len(buckets)),
		Warnings:    overall.Warnings,
	}
	for _, period := range services.AllPeriods() {
		sales, err := h.summarise(period, buckets[period])
		if err != nil {
			return GetSalesReportQueryResponse{}, err
		}
		response.Periods = append(response.Periods, sales)
	}

	return response, nil
}

func (h GetSalesReportQueryHandler) summarise(period services.Period, orders []*order.Order) (PeriodSales, error) {
	result, err := h.classifier.Classify(orders)
	if err != nil {
		return PeriodSales{}, err
	}

	sales := PeriodSales{
		Period:    period,
		Orders:    result.Stats.Total,
		Completed: result.Stats.Completed,
		Cancelled: result.Stats.Cancelled,
		Revenue:   kernel.ZeroMoney(),
	}
	for _, o := range result.Completed {
		sales.Revenue = sales.Revenue.Add(o.TotalAmount())
		sales.ItemsSold += o.TotalQuantity()
	}

	return sales, nil
}
