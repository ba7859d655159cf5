package http

import (
	"log/slog"
	"net/http"

	"mealbox/internal/core/application/usecases/commands"
	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderStatusHandler queries.GetCustomerOrderStatusQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	salesReportHandler    queries.GetSalesReportQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderStatusHandler queries.GetCustomerOrderStatusQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	salesReportHandler queries.GetSalesReportQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		salesReportHandler:       salesReportHandler,
		logger:                   logger.With("component", "http"),
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return fail(ctx, s.logger, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.toInput())
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusCreated, toOrderResponse(created))
}

// GetOrderStatus handles GET /api/v1/orders/status - a customer's orders grouped by status.
func (s *Server) GetOrderStatus(ctx echo.Context, params GetOrderStatusParams) error {
	query, err := queries.NewGetCustomerOrderStatusQuery(params.Email, valueOr(params.Status, ""))
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	response, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusOK, toOrderStatusResponse(response))
}

// ListOrders handles GET /api/v1/admin/orders - one page of orders, oldest first.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		valueOr(params.Page, DefaultPage),
		valueOr(params.Limit, DefaultPageSize),
		valueOr(params.Status, ""),
		valueOr(params.DateRange, ""),
	)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusOK, toOrderListResponse(response))
}

// GetOrder handles GET /api/v1/admin/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusOK, toOrderResponse(found))
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}
	if err = ctx.Validate(&req); err != nil {
		return fail(ctx, s.logger, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusOK, toOrderResponse(updated))
}

// GetSalesReport handles GET /api/v1/admin/reports/sales.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	report, err := s.salesReportHandler.Handle(ctx.Request().Context(), queries.NewGetSalesReportQuery())
	if err != nil {
		return fail(ctx, s.logger, err)
	}

	return ok(ctx, http.StatusOK, toSalesReportResponse(report))
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
