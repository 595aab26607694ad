package cheb3d

import (
	"fmt"
	"math"
)

// Eval returns the value of the Chebyshev series of f at (x, y, z). The
// coefficients must be current (ErrCoefficientsNotValid otherwise). Each
// coordinate must lie within its axis bounds; along a single-point axis the
// only valid coordinate is 0.
func (f *Function) Eval(x, y, z float64) (float64, error) {
	if !f.state.HasCoefficients() {
		return 0, ErrCoefficientsNotValid
	}

	var basis [3][]float64

	for a, v := range [3]float64{x, y, z} {
		axis := Axis(a)

		xi, err := f.canonical(axis, v)
		if err != nil {
			return 0, err
		}

		basis[a] = chebyshevBasis(axisLen(f.dims, axis), xi)
	}

	tx, ty, tz := basis[X], basis[Y], basis[Z]
	c := f.coefs.Data()

	// Accumulate in storage order so c is read sequentially.
	var sum float64

	idx := 0

	for i := range tx {
		for j := range ty {
			txy := tx[i] * ty[j]
			for k := range tz {
				sum += c[idx] * txy * tz[k]
				idx++
			}
		}
	}

	return sum, nil
}

// EvalAt evaluates f, computing the coefficients first if needed.
func (f *Function) EvalAt(x, y, z float64) (float64, error) {
	if err := f.ensure(CoefficientsOnly); err != nil {
		return 0, err
	}

	return f.Eval(x, y, z)
}

// canonical maps v from the axis bounds onto [-1, 1].
func (f *Function) canonical(axis Axis, v float64) (float64, error) {
	if axisLen(f.dims, axis) == 1 {
		if v != 0 {
			return 0, fmt.Errorf("%w: %v=%g on a single-point axis", ErrOutOfDomain, axis, v)
		}

		return 0, nil
	}

	iv := f.bounds[axis]
	if !iv.Contains(v) {
		return 0, fmt.Errorf("%w: %v=%g not in [%g, %g]", ErrOutOfDomain, axis, v, iv.Min, iv.Max)
	}

	xi := (2*v - iv.Min - iv.Max) / iv.Span()

	return math.Max(-1, math.Min(1, xi)), nil
}

// chebyshevBasis returns T_0(xi) ... T_{n-1}(xi) by the three-term recurrence.
func chebyshevBasis(n int, xi float64) []float64 {
	t := make([]float64, n)
	t[0] = 1

	if n > 1 {
		t[1] = xi
	}

	for k := 2; k < n; k++ {
		t[k] = 2*xi*t[k-1] - t[k-2]
	}

	return t
}
