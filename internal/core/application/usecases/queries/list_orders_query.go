package queries

import (
	"errors"
	"math"
	"strings"

	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/core/domain/services"
	"mealbox/internal/pkg/errs"
	"mealbox/internal/pkg/guard"
)

const (
	MinPage     = 1
	MaxPage     = math.MaxInt32
	MinPageSize = 1
	MaxPageSize = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery requests one page of the admin order listing.
// Page is 1-indexed. Status and date range filters are optional; empty strings mean
// no filter.
//
// Example:
//
//	query, err := NewListOrdersQuery(2, 20, "completed", "month")
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("page %d of %d (%d orders)\n", page.Page, page.PageCount, page.TotalCount)
type ListOrdersQuery struct {
	page      int
	pageSize  int
	status    *order.Status
	dateRange *services.Period

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates paging and filters. All violations are reported together.
func NewListOrdersQuery(page, pageSize int, status, dateRange string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(page),
		q.setPageSize(pageSize),
		q.setStatus(status),
		q.setDateRange(dateRange),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the 1-indexed page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset is the number of filtered orders before the requested page.
// It saturates at math.MaxInt instead of overflowing.
func (q ListOrdersQuery) Offset() int {
	if q.page <= 1 || q.pageSize <= 0 {
		return 0
	}
	if q.page-1 > math.MaxInt/q.pageSize {
		return math.MaxInt
	}
	return (q.page - 1) * q.pageSize
}

// Status returns the status filter, or nil.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// DateRange returns the period filter, or nil.
func (q ListOrdersQuery) DateRange() *services.Period {
	return q.dateRange
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < MinPage {
		return errs.NewValueIsInvalidErrorWithCause("page", errors.New("page must be 1 or greater"))
	}
	if page > MaxPage {
		return errs.NewValueIsOutOfRangeError("page", page, MinPage, MaxPage)
	}
	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("limit", pageSize, MinPageSize, MaxPageSize)
	}
	q.pageSize = pageSize
	return nil
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	q.status = &parsed
	return nil
}

func (q *ListOrdersQuery) setDateRange(dateRange string) error {
	if strings.TrimSpace(dateRange) == "" {
		return nil
	}

	parsed, err := services.ParsePeriod(dateRange)
	if err != nil {
		return err
	}
	q.dateRange = &parsed
	return nil
}

// ListOrdersQueryResponse is one page of orders plus the paging totals.
// Items is empty, never nil, for a page past the end.
type ListOrdersQueryResponse struct {
	Items      []*order.Order
	TotalCount int
	Page       int
	PageSize   int
	PageCount  int
}

// PageCount returns ceil(totalCount / pageSize).
func PageCount(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
