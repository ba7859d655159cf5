package services_test

import (
	"testing"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status, createdAt string) *order.Order {
	t.Helper()

	email, err := kernel.NewEmail("jane@example.com")
	require.NoError(t, err)
	contact := kernel.RestoreContact("Jane Doe", email, "+1 555 0100", "1 Main St")
	item := order.RestoreItem("box-veggie", "Veggie box", 2, kernel.MustMoney("15.00"))

	o, err := order.RestoreOrder(kernel.NewUUID(), contact, []order.Item{item}, order.Cash,
		kernel.MustMoney("30.00"), 2, status, kernel.RestoreTimestamp(createdAt), kernel.RestoreTimestamp(createdAt))
	require.NoError(t, err)

	return o
}

func ids(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID().String())
	}
	return result
}
