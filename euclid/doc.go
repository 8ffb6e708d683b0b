// Package euclid provides Vector, a fixed-dimension vector of float64
// magnitudes with checked arithmetic and a cached Euclidean norm.
//
// Arithmetic returns new vectors and never mutates its operands; Set is the
// only mutator. Operations that can fail return *Error values that match the
// package sentinels with errors.Is:
//
//	ErrDimensionMismatch  "Dimensions of LHS(4) and RHS(3) do not match"
//	ErrIndex              "Index 5 is not valid for this vector"
//	ErrDivideByZero       "Invalid vector division by 0"
//	ErrNoUnit             no dimensions, or a zero norm
//
// Element-wise kernels come from gonum.org/v1/gonum/floats.
package euclid
