package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mealbox/internal/adapters/out/memory"
	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.May, 14, 18, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type readUoWFactoryFunc func() ports.UnitOfWork

func (f readUoWFactoryFunc) Create() queries.ReadUoW {
	return f()
}

type fixture struct {
	factory queries.ReadUoWFactory
	writer  ports.UnitOfWork
}

func newFixture() fixture {
	store := memory.NewStore()
	uowFactory := memory.NewUnitOfWorkFactory(store)
	return fixture{
		factory: readUoWFactoryFunc(uowFactory.Create),
		writer:  uowFactory.Create(),
	}
}

func (f fixture) addCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), contactFor(t, email), now)
	require.NoError(t, err)
	require.NoError(t, f.writer.CustomerRepository().Add(context.Background(), c))

	return c
}

// addOrder stores an order with the given status, amount and raw createdAt.
func (f fixture) addOrder(t *testing.T, email string, status order.Status, amount string, createdAt string) *order.Order {
	t.Helper()

	price := kernel.MustMoney(amount)
	item := order.RestoreItem("box-veggie", "Veggie box", 2, price)
	total := price.Times(2)
	o, err := order.RestoreOrder(kernel.NewUUID(), contactFor(t, email), []order.Item{item}, order.Card,
		total, 2, status, kernel.RestoreTimestamp(createdAt), kernel.RestoreTimestamp(createdAt))
	require.NoError(t, err)
	require.NoError(t, f.writer.OrderRepository().Add(context.Background(), o))

	return o
}

func contactFor(t *testing.T, email string) kernel.Contact {
	t.Helper()

	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	contact, err := kernel.NewContact("Jane Doe", e, "+1 555 0100", "1 Main St")
	require.NoError(t, err)

	return contact
}

func stamp(t time.Time) string {
	return kernel.NewTimestamp(t).String()
}
