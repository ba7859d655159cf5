// Package services provides the stateless domain services of the order model.
//
// The package includes:
//   - StatusClassifier: partitions an order set into processing / completed / cancelled
//     buckets with summary counters
//   - DateBucketer: decides whether orders fall into the today / month / quarter / year
//     window of a fixed evaluation instant
//
// Both services are pure: they never read the clock or touch storage. Callers inject
// the evaluation instant and the order set.
package services
