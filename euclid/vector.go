// SPDX-License-Identifier: MIT

package euclid

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a fixed-dimension vector. The zero value has no dimensions.
// A Vector is not safe for concurrent use: Norm fills a cache.
type Vector struct {
	data []float64

	norm   float64
	normOK bool
}

// New returns a zero vector with dims dimensions. Panics if dims < 0.
func New(dims int) *Vector {
	if dims < 0 {
		panic("euclid: New: negative dimension count")
	}

	return &Vector{data: make([]float64, dims)}
}

// Default returns the one-dimensional zero vector.
func Default() *Vector { return New(1) }

// Filled returns a vector with every magnitude set to v. Panics if dims < 0.
func Filled(dims int, v float64) *Vector {
	x := New(dims)
	for i := range x.data {
		x.data[i] = v
	}

	return x
}

// FromSlice returns a vector holding a copy of s.
func FromSlice(s []float64) *Vector {
	return &Vector{data: append([]float64(nil), s...)}
}

// Dims returns the number of dimensions.
func (v *Vector) Dims() int { return len(v.data) }

// At returns the magnitude at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, badIndex(i)
	}

	return v.data[i], nil
}

// Set stores x at index i.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return badIndex(i)
	}
	v.data[i] = x
	v.normOK = false

	return nil
}

// Slice returns a copy of the magnitudes.
func (v *Vector) Slice() []float64 {
	return append([]float64(nil), v.data...)
}

// Clone returns an independent copy, cached norm included.
func (v *Vector) Clone() *Vector {
	c := FromSlice(v.data)
	c.norm, c.normOK = v.norm, v.normOK

	return c
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return v.Scale(-1)
}

// Add returns v + o.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if len(v.data) != len(o.data) {
		return nil, mismatch(len(v.data), len(o.data))
	}
	out := FromSlice(v.data)
	floats.Add(out.data, o.data)

	return out, nil
}

// Sub returns v - o.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if len(v.data) != len(o.data) {
		return nil, mismatch(len(v.data), len(o.data))
	}
	out := FromSlice(v.data)
	floats.Sub(out.data, o.data)

	return out, nil
}

// Scale returns k·v.
func (v *Vector) Scale(k float64) *Vector {
	out := FromSlice(v.data)
	floats.Scale(k, out.data)

	return out
}

// Div returns v / k.
func (v *Vector) Div(k float64) (*Vector, error) {
	if k == 0 {
		return nil, &Error{kind: ErrDivideByZero, msg: "Invalid vector division by 0"}
	}

	return v.Scale(1 / k), nil
}

// Equal reports whether both vectors have the same dimensions and
// magnitudes.
func (v *Vector) Equal(o *Vector) bool {
	return floats.Equal(v.data, o.data)
}

// Norm returns the Euclidean norm. The result is cached until the next Set.
func (v *Vector) Norm() float64 {
	if !v.normOK {
		v.norm = floats.Norm(v.data, 2)
		v.normOK = true
	}

	return v.norm
}

// Unit returns v scaled to length 1.
func (v *Vector) Unit() (*Vector, error) {
	if len(v.data) == 0 {
		return nil, &Error{kind: ErrNoUnit, msg: "vector with no dimensions does not have a unit vector"}
	}
	n := v.Norm()
	if n == 0 {
		return nil, &Error{kind: ErrNoUnit, msg: "vector with zero euclidean norm does not have a unit vector"}
	}

	return v.Scale(1 / n), nil
}

// Dot returns the dot product of v and o.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if len(v.data) != len(o.data) {
		return 0, mismatch(len(v.data), len(o.data))
	}

	return floats.Dot(v.data, o.data), nil
}

// String renders the magnitudes as "[1 2.5 0]", each with six significant
// digits.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', 6, 64))
	}
	b.WriteByte(']')

	return b.String()
}
