package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place a new order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Customer order status lookup
	// (GET /api/v1/orders/status)
	GetOrderStatus(ctx echo.Context, params GetOrderStatusParams) error
	// Paginated admin order listing
	// (GET /api/v1/admin/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Single order details
	// (GET /api/v1/admin/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// Move an order to another status
	// (PATCH /api/v1/admin/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderID string) error
	// Sales per calendar period
	// (GET /api/v1/admin/reports/sales)
	GetSalesReport(ctx echo.Context) error
}

// GetOrderStatusParams defines parameters for GetOrderStatus.
type GetOrderStatusParams struct {
	Email  string
	Status *string
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Page      *int
	Limit     *int
	Status    *string
	DateRange *string
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	var params GetOrderStatusParams

	if err := runtime.BindQueryParameter("form", true, true, "email", ctx.QueryParams(), &params.Email); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter email: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetOrderStatus(ctx, params)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "dateRange", ctx.QueryParams(), &params.DateRange); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dateRange: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderID)
}

// GetSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetSalesReport(ctx echo.Context) error {
	return w.Handler.GetSalesReport(ctx)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderID, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group the routes are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter. The middleware
// applies to these routes only.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST("/api/v1/orders", wrapper.CreateOrder, m...)
	router.GET("/api/v1/orders/status", wrapper.GetOrderStatus, m...)
	router.GET("/api/v1/admin/orders", wrapper.ListOrders, m...)
	router.GET("/api/v1/admin/orders/:orderId", wrapper.GetOrder, m...)
	router.PATCH("/api/v1/admin/orders/:orderId/status", wrapper.UpdateOrderStatus, m...)
	router.GET("/api/v1/admin/reports/sales", wrapper.GetSalesReport, m...)
}
