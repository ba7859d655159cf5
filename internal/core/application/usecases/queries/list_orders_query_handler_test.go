package queries_test

import (
	"context"
	"testing"
	"time"

	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/ports"
	"mealbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	fx      fixture
	handler queries.ListOrdersQueryHandler
	orders  []*order.Order
}

func (s *ListOrdersQueryHandlerTestSuite) SetupTest() {
	s.fx = newFixture()
	s.handler = queries.NewListOrdersQueryHandler(s.fx.factory, kernel.NewFixedClock(now), discardLogger())

	// 25 orders, one per day going back from now; every fifth one is completed.
	s.orders = make([]*order.Order, 0, 25)
	for i := 24; i >= 0; i-- {
		status := order.Pending
		if i%5 == 0 {
			status = order.Completed
		}
		created := now.AddDate(0, 0, -i)
		s.orders = append(s.orders, s.fx.addOrder(s.T(), "jane@example.com", status, "10.00", stamp(created)))
	}
}

func (s *ListOrdersQueryHandlerTestSuite) list(page, size int, status, dateRange string) queries.ListOrdersQueryResponse {
	query, err := queries.NewListOrdersQuery(page, size, status, dateRange)
	s.Require().NoError(err)

	response, err := s.handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)

	return response
}

func (s *ListOrdersQueryHandlerTestSuite) TestFirstPage() {
	response := s.list(1, 10, "", "")

	s.Len(response.Items, 10)
	s.Equal(25, response.TotalCount)
	s.Equal(3, response.PageCount)
	s.Equal(1, response.Page)
	s.True(response.Items[0].ID().IsEqual(s.orders[0].ID()), "oldest order first")
}

func (s *ListOrdersQueryHandlerTestSuite) TestLastPartialPage() {
	response := s.list(3, 10, "", "")

	s.Len(response.Items, 5)
	s.True(response.Items[4].ID().IsEqual(s.orders[24].ID()))
}

func (s *ListOrdersQueryHandlerTestSuite) TestPageBeyondEnd() {
	response := s.list(4, 10, "", "")

	s.NotNil(response.Items)
	s.Empty(response.Items)
	s.Equal(25, response.TotalCount)
	s.Equal(3, response.PageCount)
}

func (s *ListOrdersQueryHandlerTestSuite) TestLastAllowedPageIsEmpty() {
	for _, dateRange := range []string{"", "year"} {
		response := s.list(queries.MaxPage, queries.MaxPageSize, "", dateRange)

		s.NotNil(response.Items, dateRange)
		s.Empty(response.Items, dateRange)
		s.Equal(25, response.TotalCount, dateRange)
		s.Equal(queries.MaxPage, response.Page, dateRange)
	}
}

func (s *ListOrdersQueryHandlerTestSuite) TestStatusFilter() {
	response := s.list(1, 100, "completed", "")

	s.Equal(5, response.TotalCount)
	s.Equal(1, response.PageCount)
	for _, o := range response.Items {
		s.Equal(order.Completed, o.Status())
	}
}

func (s *ListOrdersQueryHandlerTestSuite) TestDateRangeFilter() {
	// now is 2025-05-14: the month window holds May 1st..14th.
	response := s.list(1, 10, "", "month")

	s.Equal(14, response.TotalCount)
	s.Equal(2, response.PageCount)
	s.Len(response.Items, 10)

	today := s.list(1, 10, "", "today")
	s.Equal(1, today.TotalCount)
	s.True(today.Items[0].ID().IsEqual(s.orders[24].ID()))
}

func (s *ListOrdersQueryHandlerTestSuite) TestDateRangeAndStatusFilter() {
	// Completed orders are created 0, 5, 10, 15 and 20 days ago; three of them fall in May.
	response := s.list(1, 10, "completed", "month")

	s.Equal(3, response.TotalCount)
	s.Len(response.Items, 3)
}

func (s *ListOrdersQueryHandlerTestSuite) TestDateRangePageBeyondEnd() {
	response := s.list(5, 10, "", "year")

	s.Empty(response.Items)
	s.Equal(25, response.TotalCount)
	s.Equal(3, response.PageCount)
}

func (s *ListOrdersQueryHandlerTestSuite) TestMalformedCreatedAt() {
	s.fx.addOrder(s.T(), "jane@example.com", order.Pending, "10.00", "2025-13-45")
	query, err := queries.NewListOrdersQuery(1, 10, "", "year")
	s.Require().NoError(err)

	_, err = s.handler.Handle(s.T().Context(), query)

	s.Require().ErrorIs(err, errs.ErrDateIsMalformed)
	s.Equal(errs.KindDateParse, errs.KindOf(err))
}

func (s *ListOrdersQueryHandlerTestSuite) TestMalformedCreatedAtWithoutDateRange() {
	s.fx.addOrder(s.T(), "jane@example.com", order.Pending, "10.00", "garbage")

	response := s.list(1, 100, "", "")

	s.Equal(26, response.TotalCount)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}

type MockReadUoW struct{ mock.Mock }

func (m *MockReadUoW) BeginSnapshot(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReadUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type mockReadUoWFactory struct{ uow *MockReadUoW }

func (f mockReadUoWFactory) Create() queries.ReadUoW {
	return f.uow
}

func TestListOrdersQueryHandler_SnapshotTimeout(t *testing.T) {
	ctx := t.Context()
	uow := new(MockReadUoW)
	uow.On("BeginSnapshot", ctx).Return(context.DeadlineExceeded).Once()

	h := queries.NewListOrdersQueryHandler(mockReadUoWFactory{uow: uow}, kernel.NewFixedClock(now), discardLogger())
	query, err := queries.NewListOrdersQuery(1, 10, "", "")
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)

	var persistenceErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.True(t, persistenceErr.IsTimeout())
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestListOrdersQueryHandler_UsesOneEvaluationInstant(t *testing.T) {
	fx := newFixture()
	midnight := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	fx.addOrder(t, "jane@example.com", order.Pending, "10.00", stamp(midnight))

	h := queries.NewListOrdersQueryHandler(fx.factory, kernel.NewFixedClock(midnight.Add(2*time.Second)), discardLogger())
	query, err := queries.NewListOrdersQuery(1, 10, "", "year")
	require.NoError(t, err)

	response, err := h.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Zero(t, response.TotalCount, "an order from last year is not in this year's window")
}
