// Package queries implements the read side of the order service:
//
//   - GetCustomerOrderStatusQuery: a customer's orders by email, classified into status buckets
//   - ListOrdersQuery: paginated admin listing with optional status and date range filters
//   - GetOrderQuery: a single order for the admin detail view
//   - GetSalesReportQuery: order counts, revenue and items sold per reporting period
//
// Handlers depend on ReadUoWFactory rather than on a concrete store, so the same
// handler runs against PostgreSQL and the in-memory adapter.
package queries
