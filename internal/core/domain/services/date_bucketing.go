package services

import (
	"fmt"
	"strings"
	"time"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
)

// Period is a reporting time window relative to an evaluation instant.
type Period int

const (
	UnknownPeriod Period = iota
	Today
	Month
	Quarter
	Year
)

func getPeriodStrings() map[Period]string {
	//nolint:exhaustive // UnknownPeriod cannot be requested
	return map[Period]string{
		Today:   "today",
		Month:   "month",
		Quarter: "quarter",
		Year:    "year",
	}
}

// AllPeriods lists the periods from the narrowest to the widest.
func AllPeriods() []Period {
	return []Period{Today, Month, Quarter, Year}
}

// ParsePeriod reads a dateRange filter value.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for period, str := range getPeriodStrings() {
		if str == name {
			return period, nil
		}
	}
	return UnknownPeriod, errs.NewValueIsInvalidErrorWithCause(
		"date range is invalid", fmt.Errorf("%q is not one of today, month, quarter, year", s))
}

// String returns the period name used by the API, e.g. "quarter".
func (p Period) String() string {
	if str, ok := getPeriodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// PeriodContains reports whether date falls in period relative to now.
// Both dates are UTC calendar dates.
func PeriodContains(period Period, date, now kernel.CalendarDate) bool {
	switch period {
	case Today:
		return date == now
	case Month:
		return date.Year == now.Year && date.Month == now.Month
	case Quarter:
		return date.Year == now.Year && date.Quarter() == now.Quarter()
	case Year:
		return date.Year == now.Year
	case UnknownPeriod:
		return false
	default:
		return false
	}
}

// DateBucketer evaluates period membership of orders against one fixed instant,
// so every filter computed from the same bucketer agrees on what "now" is.
//
// Example:
//
//	bucketer := services.NewDateBucketer(clock.Now())
//	thisMonth, err := bucketer.FilterMonth(orders)
//	if errors.Is(err, errs.ErrDateIsMalformed) {
//	    // a stored order has a corrupt created_at
//	}
type DateBucketer struct {
	now kernel.CalendarDate
}

// NewDateBucketer fixes the evaluation instant. It is converted to UTC.
func NewDateBucketer(now time.Time) DateBucketer {
	return DateBucketer{now: kernel.CalendarDateOf(now)}
}

// Now returns the UTC calendar date of the evaluation instant.
func (b DateBucketer) Now() kernel.CalendarDate {
	return b.now
}

// In reports whether the order was created within period.
// A malformed createdAt fails with DateParseError naming the order.
func (b DateBucketer) In(period Period, o *order.Order) (bool, error) {
	if _, ok := getPeriodStrings()[period]; !ok {
		return false, errs.NewValueIsInvalidErrorWithCause("date range is invalid", fmt.Errorf("%d is not a valid period", period))
	}

	date, err := createdDate(o)
	if err != nil {
		return false, err
	}

	return PeriodContains(period, date, b.now), nil
}

// InToday reports whether o was created on the evaluation day.
func (b DateBucketer) InToday(o *order.Order) (bool, error) {
	return b.In(Today, o)
}

// InMonth reports whether o was created in the evaluation month.
func (b DateBucketer) InMonth(o *order.Order) (bool, error) {
	return b.In(Month, o)
}

// InQuarter reports whether o was created in the evaluation quarter.
func (b DateBucketer) InQuarter(o *order.Order) (bool, error) {
	return b.In(Quarter, o)
}

// InYear reports whether o was created in the evaluation year.
func (b DateBucketer) InYear(o *order.Order) (bool, error) {
	return b.In(Year, o)
}

// Filter selects the orders created within period, keeping input order.
// The first malformed createdAt aborts the whole selection.
func (b DateBucketer) Filter(period Period, orders []*order.Order) ([]*order.Order, error) {
	selected := make([]*order.Order, 0)
	for _, o := range orders {
		ok, err := b.In(period, o)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, o)
		}
	}
	return selected, nil
}

func (b DateBucketer) FilterToday(orders []*order.Order) ([]*order.Order, error) {
	return b.Filter(Today, orders)
}

func (b DateBucketer) FilterMonth(orders []*order.Order) ([]*order.Order, error) {
	return b.Filter(Month, orders)
}

func (b DateBucketer) FilterQuarter(orders []*order.Order) ([]*order.Order, error) {
	return b.Filter(Quarter, orders)
}

func (b DateBucketer) FilterYear(orders []*order.Order) ([]*order.Order, error) {
	return b.Filter(Year, orders)
}

// Partition computes all four period selections in one pass over orders.
func (b DateBucketer) Partition(orders []*order.Order) (map[Period][]*order.Order, error) {
	buckets := make(map[Period][]*order.Order, len(getPeriodStrings()))
	for _, period := range AllPeriods() {
		buckets[period] = make([]*order.Order, 0)
	}

	for _, o := range orders {
		date, err := createdDate(o)
		if err != nil {
			return nil, err
		}
		for _, period := range AllPeriods() {
			if PeriodContains(period, date, b.now) {
				buckets[period] = append(buckets[period], o)
			}
		}
	}

	return buckets, nil
}

func createdDate(o *order.Order) (kernel.CalendarDate, error) {
	if err := o.Validate(); err != nil {
		return kernel.CalendarDate{}, err
	}

	date, err := o.CreatedAt().Calendar()
	if err != nil {
		return kernel.CalendarDate{}, fmt.Errorf("order %s: %w", o.ID(), err)
	}

	return date, nil
}
