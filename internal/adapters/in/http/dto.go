package http

import (
	"time"

	"mealbox/internal/core/application/usecases/commands"
	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
)

type newOrderRequest struct {
	Name          string                `json:"name"          validate:"required"`
	Phone         string                `json:"phone"         validate:"required"`
	Email         string                `json:"email"         validate:"required"`
	Address       string                `json:"address"       validate:"required"`
	PaymentMethod string                `json:"paymentMethod" validate:"required"`
	Items         []newOrderItemRequest `json:"items"         validate:"required,min=1,dive"`
	TotalAmount   kernel.Money          `json:"totalAmount"`
	TotalQuantity *int                  `json:"totalQuantity,omitempty"`
}

type newOrderItemRequest struct {
	ProductID   string       `json:"productId"   validate:"required"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	Price       kernel.Money `json:"price"`
}

func (r newOrderRequest) toInput() commands.CreateOrderInput {
	items := make([]commands.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, commands.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return commands.CreateOrderInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		Items:         items,
		TotalAmount:   r.TotalAmount,
		TotalQuantity: r.TotalQuantity,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type customerContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type orderItem struct {
	ProductID   string       `json:"productId"`
	ProductName string       `json:"productName,omitempty"`
	Quantity    int          `json:"quantity"`
	Price       kernel.Money `json:"price"`
	Subtotal    kernel.Money `json:"subtotal"`
}

type orderResponse struct {
	ID            string          `json:"id"`
	Customer      customerContact `json:"customer"`
	Items         []orderItem     `json:"items"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TotalAmount   kernel.Money    `json:"totalAmount"`
	TotalQuantity int             `json:"totalQuantity"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	contact := o.Contact()

	items := make([]orderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItem{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			Subtotal:    item.Subtotal(),
		})
	}

	return orderResponse{
		ID: o.ID().String(),
		Customer: customerContact{
			Name:    contact.Name(),
			Email:   contact.Email().String(),
			Phone:   contact.Phone(),
			Address: contact.Address(),
		},
		Items:         items,
		PaymentMethod: o.PaymentMethod().String(),
		Status:        o.Status().String(),
		TotalAmount:   o.TotalAmount(),
		TotalQuantity: o.TotalQuantity(),
		CreatedAt:     o.CreatedAt().String(),
		UpdatedAt:     o.UpdatedAt().String(),
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

type warning struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

func toWarnings(in []services.ClassificationWarning) []warning {
	out := make([]warning, 0, len(in))
	for _, w := range in {
		out = append(out, warning{OrderID: w.OrderID.String(), Message: w.Message})
	}
	return out
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type statusStats struct {
	Total      int `json:"total"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

type orderStatusResponse struct {
	User     *userSummary    `json:"user"`
	Stats    statusStats     `json:"stats"`
	Orders   []orderResponse `json:"orders"`
	Warnings []warning       `json:"warnings"`
}

func toOrderStatusResponse(r queries.GetCustomerOrderStatusQueryResponse) orderStatusResponse {
	return orderStatusResponse{
		User: toUserSummary(r.Customer),
		Stats: statusStats{
			Total:      r.Stats.Total,
			Processing: r.Stats.Processing,
			Completed:  r.Stats.Completed,
			Cancelled:  r.Stats.Cancelled,
		},
		Orders:   toOrderResponses(r.Orders),
		Warnings: toWarnings(r.Warnings),
	}
}

func toUserSummary(c *customer.Customer) *userSummary {
	if c == nil {
		return nil
	}
	return &userSummary{ID: c.ID().String(), Name: c.Name(), Email: c.Email().String()}
}

type orderListResponse struct {
	Items      []orderResponse `json:"items"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	PageCount  int             `json:"pageCount"`
}

func toOrderListResponse(r queries.ListOrdersQueryResponse) orderListResponse {
	return orderListResponse{
		Items:      toOrderResponses(r.Items),
		TotalCount: r.TotalCount,
		Page:       r.Page,
		PageSize:   r.PageSize,
		PageCount:  r.PageCount,
	}
}

type periodSales struct {
	Period    string       `json:"period"`
	Orders    int          `json:"orders"`
	Completed int          `json:"completed"`
	Cancelled int          `json:"cancelled"`
	Revenue   kernel.Money `json:"revenue"`
	ItemsSold int          `json:"itemsSold"`
}

type salesReportResponse struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Periods     []periodSales `json:"periods"`
	Warnings    []warning     `json:"warnings"`
}

func toSalesReportResponse(r queries.GetSalesReportQueryResponse) salesReportResponse {
	periods := make([]periodSales, 0, len(r.Periods))
	for _, p := range r.Periods {
		periods = append(periods, periodSales{
			Period:    p.Period.String(),
			Orders:    p.Orders,
			Completed: p.Completed,
			Cancelled: p.Cancelled,
			Revenue:   p.Revenue,
			ItemsSold: p.ItemsSold,
		})
	}

	return salesReportResponse{
		GeneratedAt: r.GeneratedAt,
		Periods:     periods,
		Warnings:    toWarnings(r.Warnings),
	}
}
