package commands_test

import (
	"context"

	"mealbox/internal/core/application/usecases/commands"
	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
	updatedAt kernel.Timestamp,
) error {
	args := m.Called(ctx, id, expected, next, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, email kernel.Email) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListPage(
	ctx context.Context,
	status *order.Status,
	offset, limit int,
) (ports.OrderPage, error) {
	args := m.Called(ctx, status, offset, limit)
	return args.Get(0).(ports.OrderPage), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// uowFactoryFunc adapts an in-memory unit of work factory to the command ports.
type uowFactoryFunc func() ports.UnitOfWork

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW {
	return f()
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
