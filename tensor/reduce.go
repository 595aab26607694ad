package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Max returns the largest element.
func (t *Dense) Max() float64 { return floats.Max(t.data) }

// Min returns the smallest element.
func (t *Dense) Min() float64 { return floats.Min(t.data) }

// Sum returns the sum of all elements.
func (t *Dense) Sum() float64 { return floats.Sum(t.data) }

// MaxAbs returns the largest absolute value of any element.
func (t *Dense) MaxAbs() float64 { return floats.Norm(t.data, math.Inf(1)) }

// EqualApprox reports whether a and b have the same shape and all elements
// agree within tol, either absolutely or relatively.
func EqualApprox(a, b *Dense, tol float64) bool {
	if !SameShape(a, b) {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal(a, b *Dense) bool {
	if !SameShape(a, b) {
		return false
	}

	return floats.Equal(a.data, b.data)
}
