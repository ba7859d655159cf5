package memory_test

import (
	"testing"
	"time"

	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newContact(t *testing.T, email string) kernel.Contact {
	t.Helper()

	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	contact, err := kernel.NewContact("Jane Doe", e, "+1 555 0100", "1 Main St")
	require.NoError(t, err)

	return contact
}

func newOrder(t *testing.T, email string, createdAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewItem("box-veggie", "Veggie box", 2, kernel.MustMoney("15.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), newContact(t, email), []order.Item{item},
		order.Cash, kernel.MustMoney("30.00"), 2, createdAt)
	require.NoError(t, err)

	return o
}

func newCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), newContact(t, email), time.Now())
	require.NoError(t, err)

	return c
}
