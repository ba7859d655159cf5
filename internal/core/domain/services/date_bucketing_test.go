package services_test

import (
	"testing"
	"time"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mayNow = time.Date(2025, time.May, 14, 18, 30, 0, 0, time.UTC)

func TestPeriodContains(t *testing.T) {
	now := kernel.CalendarDate{Year: 2025, Month: 5, Day: 14}

	tests := []struct {
		name     string
		period   services.Period
		date     kernel.CalendarDate
		expected bool
	}{
		{"today same day", services.Today, kernel.CalendarDate{Year: 2025, Month: 5, Day: 14}, true},
		{"today previous day", services.Today, kernel.CalendarDate{Year: 2025, Month: 5, Day: 13}, false},
		{"today same day other year", services.Today, kernel.CalendarDate{Year: 2024, Month: 5, Day: 14}, false},
		{"month same month", services.Month, kernel.CalendarDate{Year: 2025, Month: 5, Day: 1}, true},
		{"month same month other year", services.Month, kernel.CalendarDate{Year: 2024, Month: 5, Day: 14}, false},
		{"quarter april", services.Quarter, kernel.CalendarDate{Year: 2025, Month: 4, Day: 1}, true},
		{"quarter june", services.Quarter, kernel.CalendarDate{Year: 2025, Month: 6, Day: 30}, true},
		{"quarter march", services.Quarter, kernel.CalendarDate{Year: 2025, Month: 3, Day: 31}, false},
		{"quarter july", services.Quarter, kernel.CalendarDate{Year: 2025, Month: 7, Day: 1}, false},
		{"quarter same quarter other year", services.Quarter, kernel.CalendarDate{Year: 2024, Month: 5, Day: 1}, false},
		{"year january", services.Year, kernel.CalendarDate{Year: 2025, Month: 1, Day: 1}, true},
		{"year previous december", services.Year, kernel.CalendarDate{Year: 2024, Month: 12, Day: 31}, false},
		{"unknown period", services.UnknownPeriod, now, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.PeriodContains(tt.period, tt.date, now))
		})
	}
}

func TestDateBucketer_Predicates(t *testing.T) {
	bucketer := services.NewDateBucketer(mayNow)

	t.Run("should match all periods for an order created now", func(t *testing.T) {
		o := storedOrder(t, order.Pending, kernel.NewTimestamp(mayNow).String())

		for _, in := range []func(*order.Order) (bool, error){
			bucketer.InToday, bucketer.InMonth, bucketer.InQuarter, bucketer.InYear,
		} {
			ok, err := in(o)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("should match quarter but not month for april", func(t *testing.T) {
		o := storedOrder(t, order.Completed, "2025-04-02T09:00:00Z")

		inMonth, err := bucketer.InMonth(o)
		require.NoError(t, err)
		inQuarter, err := bucketer.InQuarter(o)
		require.NoError(t, err)

		assert.False(t, inMonth)
		assert.True(t, inQuarter)
	})

	t.Run("should not match march in the second quarter", func(t *testing.T) {
		o := storedOrder(t, order.Completed, "2025-03-31 23:59:59")

		ok, err := bucketer.InQuarter(o)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should compare in UTC", func(t *testing.T) {
		// 2025-05-15 01:00 in UTC+3 is still 2025-05-14 in UTC.
		o := storedOrder(t, order.Pending, "2025-05-15T01:00:00+03:00")

		ok, err := bucketer.InToday(o)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should accept a date-only value", func(t *testing.T) {
		o := storedOrder(t, order.Pending, "2025-05-14")

		ok, err := bucketer.InToday(o)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should fail with DateParseError for malformed createdAt", func(t *testing.T) {
		o := storedOrder(t, order.Pending, "14/05/2025")

		_, err := bucketer.InYear(o)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDateIsMalformed)
		assert.Contains(t, err.Error(), o.ID().String())
		var dateErr *errs.DateParseError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "14/05/2025", dateErr.Value)
	})

	t.Run("should fail with DateParseError for missing createdAt", func(t *testing.T) {
		o := storedOrder(t, order.Pending, "")

		_, err := bucketer.InToday(o)

		require.ErrorIs(t, err, errs.ErrDateIsMalformed)
	})

	t.Run("should reject unknown period", func(t *testing.T) {
		_, err := bucketer.In(services.UnknownPeriod, storedOrder(t, order.Pending, someDay))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDateBucketer_YearBoundary(t *testing.T) {
	bucketer := services.NewDateBucketer(time.Date(2026, time.January, 1, 0, 0, 5, 0, time.UTC))
	o := storedOrder(t, order.Completed, "2025-12-31T23:59:59.999999Z")

	for _, period := range []services.Period{services.Today, services.Month, services.Quarter, services.Year} {
		ok, err := bucketer.In(period, o)

		require.NoError(t, err)
		assert.False(t, ok, period.String())
	}
}

func TestDateBucketer_Filter(t *testing.T) {
	bucketer := services.NewDateBucketer(mayNow)
	today := storedOrder(t, order.Pending, "2025-05-14T08:00:00Z")
	earlierThisMonth := storedOrder(t, order.Completed, "2025-05-02T08:00:00Z")
	april := storedOrder(t, order.Cancelled, "2025-04-20T08:00:00Z")
	january := storedOrder(t, order.Completed, "2025-01-20T08:00:00Z")
	lastYear := storedOrder(t, order.Completed, "2024-05-14T08:00:00Z")
	input := []*order.Order{lastYear, today, april, earlierThisMonth, january}

	t.Run("should select each period preserving input order", func(t *testing.T) {
		selected, err := bucketer.FilterToday(input)
		require.NoError(t, err)
		assert.Equal(t, ids([]*order.Order{today}), ids(selected))

		selected, err = bucketer.FilterMonth(input)
		require.NoError(t, err)
		assert.Equal(t, ids([]*order.Order{today, earlierThisMonth}), ids(selected))

		selected, err = bucketer.FilterQuarter(input)
		require.NoError(t, err)
		assert.Equal(t, ids([]*order.Order{today, april, earlierThisMonth}), ids(selected))

		selected, err = bucketer.FilterYear(input)
		require.NoError(t, err)
		assert.Equal(t, ids([]*order.Order{today, april, earlierThisMonth, january}), ids(selected))
	})

	t.Run("should keep narrower periods inside wider ones", func(t *testing.T) {
		buckets, err := bucketer.Partition(input)
		require.NoError(t, err)

		assert.Subset(t, ids(buckets[services.Month]), ids(buckets[services.Today]))
		assert.Subset(t, ids(buckets[services.Quarter]), ids(buckets[services.Month]))
		assert.Subset(t, ids(buckets[services.Year]), ids(buckets[services.Quarter]))
	})

	t.Run("should abort on first malformed createdAt", func(t *testing.T) {
		broken := storedOrder(t, order.Pending, "not-a-date")

		selected, err := bucketer.FilterYear(append([]*order.Order{today}, broken))

		require.ErrorIs(t, err, errs.ErrDateIsMalformed)
		assert.Nil(t, selected)
	})

	t.Run("should return empty slice when nothing matches", func(t *testing.T) {
		selected, err := bucketer.FilterToday([]*order.Order{lastYear})

		require.NoError(t, err)
		assert.NotNil(t, selected)
		assert.Empty(t, selected)
	})
}

func TestParsePeriod(t *testing.T) {
	for _, period := range services.AllPeriods() {
		parsed, err := services.ParsePeriod(period.String())

		require.NoError(t, err)
		assert.Equal(t, period, parsed)
	}

	_, err := services.ParsePeriod("week")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
