package services

import (
	"fmt"
	"strings"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"
	"mealbox/internal/pkg/errs"
)

// StatusBucket groups order statuses for customer-facing reporting.
type StatusBucket int

const (
	// UnrecognizedBucket holds orders whose stored status is not part of the state machine.
	UnrecognizedBucket StatusBucket = iota
	// ProcessingBucket holds every non-terminal status: pending and processing.
	ProcessingBucket
	// CompletedBucket holds the terminal success status.
	CompletedBucket
	// CancelledBucket holds the terminal cancelled status.
	CancelledBucket
)

func getStatusBucketStrings() map[StatusBucket]string {
	//nolint:exhaustive // UnrecognizedBucket cannot be requested
	return map[StatusBucket]string{
		ProcessingBucket: "processing",
		CompletedBucket:  "completed",
		CancelledBucket:  "cancelled",
	}
}

// ParseStatusBucket reads the optional status filter of a status query.
func ParseStatusBucket(s string) (StatusBucket, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for bucket, str := range getStatusBucketStrings() {
		if str == name {
			return bucket, nil
		}
	}
	return UnrecognizedBucket, errs.NewValueIsInvalidErrorWithCause(
		"status filter is invalid", fmt.Errorf("%q is not one of processing, completed, cancelled", s))
}

// String returns the bucket name used by the API.
func (b StatusBucket) String() string {
	if str, ok := getStatusBucketStrings()[b]; ok {
		return str
	}
	return "unrecognized"
}

// BucketOf returns the bucket an order status is counted in.
func BucketOf(status order.Status) StatusBucket {
	switch status {
	case order.Pending, order.Processing:
		return ProcessingBucket
	case order.Completed:
		return CompletedBucket
	case order.Cancelled:
		return CancelledBucket
	case order.Unknown:
		return UnrecognizedBucket
	default:
		return UnrecognizedBucket
	}
}

// ClassificationStats are the summary counters of a classification.
// Total counts every order; the three named counters skip unrecognised statuses.
type ClassificationStats struct {
	Total      int
	Processing int
	Completed  int
	Cancelled  int
}

// ClassificationWarning reports a non-fatal anomaly found while classifying.
type ClassificationWarning struct {
	OrderID kernel.UUID
	Message string
}

// ClassificationResult holds the counters and the status buckets of one order set.
// Every bucket keeps the relative order of the input; All is an exact copy of it.
type ClassificationResult struct {
	Stats      ClassificationStats
	Processing []*order.Order
	Completed  []*order.Order
	Cancelled  []*order.Order
	All        []*order.Order
	Warnings   []ClassificationWarning
}

// Bucket returns the orders of one named bucket.
func (r ClassificationResult) Bucket(bucket StatusBucket) []*order.Order {
	switch bucket {
	case ProcessingBucket:
		return r.Processing
	case CompletedBucket:
		return r.Completed
	case CancelledBucket:
		return r.Cancelled
	case UnrecognizedBucket:
		return []*order.Order{}
	default:
		return []*order.Order{}
	}
}

// Orders returns the bucket selected by filter, or All when filter is nil.
func (r ClassificationResult) Orders(filter *StatusBucket) []*order.Order {
	if filter == nil {
		return r.All
	}
	return r.Bucket(*filter)
}

// StatusClassifier partitions an order set into status buckets and counters.
// It is stateless and deterministic: the same input always yields the same result.
//
// Example:
//
//	result, err := services.NewStatusClassifier().Classify(orders)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders in progress\n", result.Stats.Processing, result.Stats.Total)
type StatusClassifier struct{}

// NewStatusClassifier creates a StatusClassifier.
func NewStatusClassifier() StatusClassifier {
	return StatusClassifier{}
}

// Classify partitions orders. It fails only when an element was not properly constructed.
// Orders with an unrecognised status are counted in Stats.Total, appear in All, and
// produce a warning.
func (c StatusClassifier) Classify(orders []*order.Order) (ClassificationResult, error) {
	result := ClassificationResult{
		Processing: make([]*order.Order, 0),
		Completed:  make([]*order.Order, 0),
		Cancelled:  make([]*order.Order, 0),
		All:        make([]*order.Order, 0, len(orders)),
		Warnings:   make([]ClassificationWarning, 0),
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return ClassificationResult{}, err
		}

		result.Stats.Total++
		result.All = append(result.All, o)

		switch BucketOf(o.Status()) {
		case ProcessingBucket:
			result.Stats.Processing++
			result.Processing = append(result.Processing, o)
		case CompletedBucket:
			result.Stats.Completed++
			result.Completed = append(result.Completed, o)
		case CancelledBucket:
			result.Stats.Cancelled++
			result.Cancelled = append(result.Cancelled, o)
		case UnrecognizedBucket:
			result.Warnings = append(result.Warnings, ClassificationWarning{
				OrderID: o.ID(),
				Message: fmt.Sprintf("order has unrecognized status %q", o.Status()),
			})
		}
	}

	return result, nil
}
