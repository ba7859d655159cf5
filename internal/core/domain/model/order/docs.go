// Package order provides the Order aggregate of the meal-box ordering service.
//
// The package includes:
//   - Order: the aggregate root holding the contact snapshot, items, totals and lifecycle
//   - Item: an order line with product reference, quantity and unit price
//   - Status: the lifecycle state machine (pending -> processing -> completed | cancelled)
//   - PaymentMethod: the closed set of accepted payment methods
//
// Key business rules:
//   - An order has at least one item; quantities are >= 1 and prices >= 0
//   - Totals match the item sums at creation, compared at fixed-point precision
//   - Cancelled is reachable from pending and processing; completed only from processing
//   - Completed and cancelled are terminal; re-applying the current status is a no-op
package order
