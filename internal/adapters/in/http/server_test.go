package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "mealbox/internal/adapters/in/http"
	"mealbox/internal/adapters/out/memory"
	"mealbox/internal/core/application/usecases/commands"
	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type uowFactoryFunc func() ports.UnitOfWork

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

type orderUoWFactoryFunc func() ports.UnitOfWork

func (f orderUoWFactoryFunc) Create() commands.OrderUoW {
	return f()
}

type readUoWFactoryFunc func() ports.UnitOfWork

func (f readUoWFactoryFunc) Create() queries.ReadUoW {
	return f()
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Kind      string `json:"kind"`
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
}

type orderBody struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	TotalAmount   json.Number `json:"totalAmount"`
	TotalQuantity int         `json:"totalQuantity"`
	CreatedAt     string      `json:"createdAt"`
	Customer      struct {
		Email string `json:"email"`
	} `json:"customer"`
	Items []struct {
		ProductID string      `json:"productId"`
		Subtotal  json.Number `json:"subtotal"`
	} `json:"items"`
}

// ServerTestSuite drives the full echo stack over the in-memory store.
type ServerTestSuite struct {
	suite.Suite
	echo *echo.Echo
	now  time.Time
}

func (s *ServerTestSuite) SetupTest() {
	s.now = time.Date(2025, time.May, 14, 18, 30, 0, 0, time.UTC)
	clock := kernel.NewFixedClock(s.now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uowFactory := memory.NewUnitOfWorkFactory(memory.NewStore())
	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(uowFactoryFunc(uowFactory.Create), clock),
		commands.NewUpdateOrderStatusCommandHandler(orderUoWFactoryFunc(uowFactory.Create), clock),
		queries.NewGetCustomerOrderStatusQueryHandler(readUoWFactoryFunc(uowFactory.Create), logger),
		queries.NewListOrdersQueryHandler(readUoWFactoryFunc(uowFactory.Create), clock, logger),
		queries.NewGetOrderQueryHandler(readUoWFactoryFunc(uowFactory.Create)),
		queries.NewGetSalesReportQueryHandler(readUoWFactoryFunc(uowFactory.Create), clock, logger),
		logger,
	)

	e, err := httpadapter.NewRouter(s.T().Context(), server, time.Second)
	s.Require().NoError(err)
	s.echo = e
}

func (s *ServerTestSuite) do(method, target, body string) (int, apiResponse) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var resp apiResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func (s *ServerTestSuite) createOrder(email string) orderBody {
	code, resp := s.do(http.MethodPost, "/api/v1/orders", newOrderJSON(email, "15.00", 2, "30.00"))
	s.Require().Equal(http.StatusCreated, code)

	var created orderBody
	s.Require().NoError(json.Unmarshal(resp.Data, &created))
	return created
}

func newOrderJSON(email, price string, quantity int, total string) string {
	return fmt.Sprintf(`{
		"name": "Jane Doe",
		"phone": "+1 555 0100",
		"email": %q,
		"address": "1 Main St",
		"paymentMethod": "card",
		"items": [{"productId": "box-veggie", "productName": "Veggie box", "quantity": %d, "price": %s}],
		"totalAmount": %s
	}`, email, quantity, price, total)
}

func (s *ServerTestSuite) TestCreateOrder_Success() {
	created := s.createOrder("Jane@Example.com")

	s.NotEmpty(created.ID)
	s.Equal("pending", created.Status)
	s.Equal("30.00", created.TotalAmount.String())
	s.Equal(2, created.TotalQuantity, "omitted total quantity is computed")
	s.Equal("jane@example.com", created.Customer.Email)
	s.Equal("2025-05-14T18:30:00.000000Z", created.CreatedAt)
	s.Require().Len(created.Items, 1)
	s.Equal("30.00", created.Items[0].Subtotal.String())
}

func (s *ServerTestSuite) TestCreateOrder_Rejected() {
	testCases := []struct {
		name string
		body string
	}{
		{"total mismatch", newOrderJSON("jane@example.com", "15.00", 2, "31.00")},
		{"zero quantity", newOrderJSON("jane@example.com", "15.00", 0, "0.00")},
		{"bad email", newOrderJSON("not-an-email", "15.00", 2, "30.00")},
		{"missing items", `{"name":"Jane","phone":"1","email":"jane@example.com","address":"x","paymentMethod":"card","totalAmount":1}`},
		{"unknown payment method", strings.Replace(newOrderJSON("jane@example.com", "15.00", 2, "30.00"), `"card"`, `"barter"`, 1)},
		{"malformed json", `{"name":`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, resp := s.do(http.MethodPost, "/api/v1/orders", tc.body)

			s.Equal(http.StatusBadRequest, code)
			s.False(resp.Success)
			s.Require().NotNil(resp.Error)
			s.Equal("validation", resp.Error.Kind)
		})
	}
}

func (s *ServerTestSuite) TestGetOrderStatus() {
	s.createOrder("jane@example.com")
	s.createOrder("jane@example.com")

	code, resp := s.do(http.MethodGet, "/api/v1/orders/status?email=jane@example.com", "")
	s.Require().Equal(http.StatusOK, code)

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		Stats struct {
			Total      int `json:"total"`
			Processing int `json:"processing"`
		} `json:"stats"`
		Orders []orderBody `json:"orders"`
	}
	s.Require().NoError(json.Unmarshal(resp.Data, &body))
	s.Equal("jane@example.com", body.User.Email)
	s.Equal(2, body.Stats.Total)
	s.Equal(2, body.Stats.Processing, "pending orders count as processing")
	s.Len(body.Orders, 2)

	code, resp = s.do(http.MethodGet, "/api/v1/orders/status?email=jane@example.com&status=completed", "")
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(resp.Data, &body))
	s.Empty(body.Orders)
	s.Equal(2, body.Stats.Total, "stats ignore the filter")
}

func (s *ServerTestSuite) TestGetOrderStatus_Errors() {
	code, resp := s.do(http.MethodGet, "/api/v1/orders/status?email=nobody@example.com", "")
	s.Equal(http.StatusNotFound, code)
	s.Equal("not_found", resp.Error.Kind)

	code, resp = s.do(http.MethodGet, "/api/v1/orders/status?email=jane@example.com&status=shipped", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("validation", resp.Error.Kind)

	code, resp = s.do(http.MethodGet, "/api/v1/orders/status", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("validation", resp.Error.Kind)
}

func (s *ServerTestSuite) TestListOrders_Pagination() {
	for i := range 25 {
		s.createOrder(fmt.Sprintf("customer%d@example.com", i))
	}

	var page struct {
		Items      []orderBody `json:"items"`
		TotalCount int         `json:"totalCount"`
		Page       int         `json:"page"`
		PageCount  int         `json:"pageCount"`
	}

	code, resp := s.do(http.MethodGet, "/api/v1/admin/orders?page=1&limit=10", "")
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(resp.Data, &page))
	s.Len(page.Items, 10)
	s.Equal(25, page.TotalCount)
	s.Equal(3, page.PageCount)

	code, resp = s.do(http.MethodGet, "/api/v1/admin/orders?page=4&limit=10", "")
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(resp.Data, &page))
	s.Empty(page.Items)
	s.Equal(25, page.TotalCount)
	s.Equal(4, page.Page)

	code, resp = s.do(http.MethodGet, "/api/v1/admin/orders?dateRange=today&status=pending", "")
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(resp.Data, &page))
	s.Equal(25, page.TotalCount)
	s.Len(page.Items, httpadapter.DefaultPageSize)
}

func (s *ServerTestSuite) TestListOrders_InvalidParameters() {
	for _, target := range []string{
		"/api/v1/admin/orders?limit=0",
		"/api/v1/admin/orders?limit=101",
		"/api/v1/admin/orders?page=0",
		"/api/v1/admin/orders?page=abc",
		"/api/v1/admin/orders?page=2147483648",
		"/api/v1/admin/orders?dateRange=decade",
	} {
		code, resp := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, code, target)
		s.Equal("validation", resp.Error.Kind, target)
	}
}

func (s *ServerTestSuite) TestUpdateOrderStatus() {
	created := s.createOrder("jane@example.com")
	target := "/api/v1/admin/orders/" + created.ID + "/status"

	code, resp := s.do(http.MethodPatch, target, `{"status":"processing"}`)
	s.Require().Equal(http.StatusOK, code)
	var updated orderBody
	s.Require().NoError(json.Unmarshal(resp.Data, &updated))
	s.Equal("processing", updated.Status)

	code, resp = s.do(http.MethodPatch, target, `{"status":"pending"}`)
	s.Equal(http.StatusConflict, code)
	s.Equal("invalid_transition", resp.Error.Kind)
	s.False(resp.Error.Retryable)

	code, resp = s.do(http.MethodGet, "/api/v1/admin/orders/"+created.ID, "")
	s.Require().Equal(http.StatusOK, code)
	var fetched orderBody
	s.Require().NoError(json.Unmarshal(resp.Data, &fetched))
	s.Equal("processing", fetched.Status)
}

func (s *ServerTestSuite) TestUpdateOrderStatus_Errors() {
	code, resp := s.do(http.MethodPatch, "/api/v1/admin/orders/not-a-uuid/status", `{"status":"processing"}`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal("validation", resp.Error.Kind)

	missing := kernel.NewUUID().String()
	code, resp = s.do(http.MethodPatch, "/api/v1/admin/orders/"+missing+"/status", `{"status":"processing"}`)
	s.Equal(http.StatusNotFound, code)
	s.Equal("not_found", resp.Error.Kind)

	created := s.createOrder("jane@example.com")
	code, resp = s.do(http.MethodPatch, "/api/v1/admin/orders/"+created.ID+"/status", `{"status":"shipped"}`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal("validation", resp.Error.Kind)
}

func (s *ServerTestSuite) TestGetSalesReport() {
	created := s.createOrder("jane@example.com")
	s.createOrder("jane@example.com")
	code, _ := s.do(http.MethodPatch, "/api/v1/admin/orders/"+created.ID+"/status", `{"status":"completed"}`)
	s.Require().Equal(http.StatusOK, code)

	code, resp := s.do(http.MethodGet, "/api/v1/admin/reports/sales", "")
	s.Require().Equal(http.StatusOK, code)

	var report struct {
		Periods []struct {
			Period    string      `json:"period"`
			Orders    int         `json:"orders"`
			Completed int         `json:"completed"`
			Revenue   json.Number `json:"revenue"`
		} `json:"periods"`
	}
	s.Require().NoError(json.Unmarshal(resp.Data, &report))
	s.Require().Len(report.Periods, 4)
	s.Equal("today", report.Periods[0].Period)
	for _, p := range report.Periods {
		s.Equal(2, p.Orders, p.Period)
		s.Equal(1, p.Completed, p.Period)
		s.Equal("30.00", p.Revenue.String(), p.Period)
	}
}

func (s *ServerTestSuite) TestUnknownRoute_UsesEnvelope() {
	code, resp := s.do(http.MethodGet, "/api/v1/nowhere", "")

	s.Equal(http.StatusNotFound, code)
	s.False(resp.Success)
	s.Equal("not_found", resp.Error.Kind)
}

func (s *ServerTestSuite) TestOperationalRoutes() {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, rec.Code)

	s.createOrder("jane@example.com")

	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `mealbox_http_requests_total{handler="/api/v1/orders",method="POST",status="201"} 1`)

	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/api/v1/admin/orders")
}

func (s *ServerTestSuite) TestCreateOrder_TotalQuantityMismatch() {
	body := strings.Replace(newOrderJSON("jane@example.com", "15.00", 2, "30.00"),
		`"totalAmount": 30.00`, `"totalAmount": 30.00, "totalQuantity": 3`, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	var resp apiResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(s.T(), "validation", resp.Error.Kind)
	assert.Contains(s.T(), resp.Error.Message, "total quantity")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
