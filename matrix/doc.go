// Package matrix provides the dense numeric container behind weighted
// selection tables.
//
// The package provides:
//
//   - Matrix: a minimal interface over a mutable 2-D float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense: a row-major implementation storing r*c values in one flat slice,
//     with row/column fast paths (Row, RowSum, FillRow, FillCol, Fill) for
//     algorithms that sweep whole rows or columns.
//
// Safety: public accessors never panic on user input; they return sentinel
// errors from errors.go. Dense rejects NaN and ±Inf on write.
//
// Determinism: all loops run in fixed index order; no map iteration.
package matrix
