package order

import (
	"errors"
	"fmt"
	"strings"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"
)

// Item is one order line: a catalog product, how many boxes, and the unit price at order time.
type Item struct {
	productID   string
	productName string
	quantity    int
	price       kernel.Money
}

// NewItem validates a line. The product name is optional.
//
// Parameters:
//   - productID: Catalog identifier, trimmed and required
//   - productName: Display name, may be empty
//   - quantity: Number of boxes, at least 1
//   - price: Unit price, non-negative with at most MoneyScale decimal places
//
// Returns:
//   - Item: The validated line
//   - error: Joined validation errors for every invalid field
func NewItem(productID, productName string, quantity int, price kernel.Money) (Item, error) {
	item := Item{
		productID:   strings.TrimSpace(productID),
		productName: strings.TrimSpace(productName),
		quantity:    quantity,
		price:       price,
	}

	var idErr, quantityErr, priceErr error
	if item.productID == "" {
		idErr = errs.NewValueIsRequiredError("product id")
	}
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	switch {
	case price.IsNegative():
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price))
	case !price.FitsScale():
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s has more than %d decimal places", price.Decimal(), kernel.MoneyScale))
	}

	if err := errors.Join(idErr, quantityErr, priceErr); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted line as-is.
func RestoreItem(productID, productName string, quantity int, price kernel.Money) Item {
	return Item{productID: productID, productName: productName, quantity: quantity, price: price}
}

// ProductID returns the catalog identifier of the product.
func (i Item) ProductID() string {
	return i.productID
}

// ProductName returns the display name, which may be empty.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of boxes ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price at order time.
func (i Item) Price() kernel.Money {
	return i.price
}

// Subtotal is quantity × price.
func (i Item) Subtotal() kernel.Money {
	return i.price.Times(i.quantity)
}

// SumItems returns the total amount and total quantity of items.
func SumItems(items []Item) (kernel.Money, int) {
	amount := kernel.ZeroMoney()
	quantity := 0
	for _, item := range items {
		amount = amount.Add(item.Subtotal())
		quantity += item.quantity
	}
	return amount, quantity
}
