package euclid

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch = errors.New("euclid: dimension mismatch")
	ErrIndex             = errors.New("euclid: index out of range")
	ErrDivideByZero      = errors.New("euclid: division by zero")
	ErrNoUnit            = errors.New("euclid: no unit vector")
)

// Error carries a human-readable message and the sentinel it belongs to.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap returns the sentinel, so errors.Is(err, ErrIndex) works.
func (e *Error) Unwrap() error { return e.kind }

func mismatch(lhs, rhs int) error {
	return &Error{kind: ErrDimensionMismatch, msg: fmt.Sprintf("Dimensions of LHS(%d) and RHS(%d) do not match", lhs, rhs)}
}

func badIndex(i int) error {
	return &Error{kind: ErrIndex, msg: fmt.Sprintf("Index %d is not valid for this vector", i)}
}
