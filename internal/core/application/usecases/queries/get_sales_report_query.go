package queries

import (
	"errors"
	"time"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/guard"
)

var (
	ErrGetSalesReportQueryIsNotConstructed = errors.New(
		"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
	)
)

// GetSalesReportQuery requests sales figures for today, this month, this quarter
// and this year. It has no parameters; the evaluation instant comes from the
// handler's clock.
type GetSalesReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery returns a query for all reporting periods.
func NewGetSalesReportQuery() GetSalesReportQuery {
	return GetSalesReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// PeriodSales summarises the orders created within one period.
// Revenue and ItemsSold count completed orders only.
type PeriodSales struct {
	Period    services.Period
	Orders    int
	Completed int
	Cancelled int
	Revenue   kernel.Money
	ItemsSold int
}

// GetSalesReportQueryResponse lists one PeriodSales per period, narrowest first.
type GetSalesReportQueryResponse struct {
	GeneratedAt time.Time
	Periods     []PeriodSales
	Warnings    []services.ClassificationWarning
}
