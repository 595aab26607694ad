package cheb3d

import (
	"fmt"

	"github.com/cwbudde/cheb3d/tensor"
)

// minDerivativePoints is the smallest axis length along which a derivative
// is computed. Shorter axes have an identically zero derivative.
const minDerivativePoints = 5

// PartialX returns the derivative of f along x. See Partial.
func (f *Function) PartialX() (*Function, error) { return f.Partial(X) }

// PartialY returns the derivative of f along y. See Partial.
func (f *Function) PartialY() (*Function, error) { return f.Partial(Y) }

// PartialZ returns the derivative of f along z. See Partial.
func (f *Function) PartialZ() (*Function, error) { return f.Partial(Z) }

// Partial returns the derivative of f along axis, on the same grid. The
// result is computed from the coefficients on first request and memoized
// until f changes. It is owned by f: Clone it before modifying it.
func (f *Function) Partial(axis Axis) (*Function, error) {
	if axis < X || axis > Z {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}

	if d := f.partials[axis]; d != nil {
		return d, nil
	}

	d, err := f.derivative(axis)
	if err != nil {
		return nil, err
	}

	f.partials[axis] = d

	return d, nil
}

func (f *Function) derivative(axis Axis) (*Function, error) {
	np := axisLen(f.dims, axis)
	if np < minDerivativePoints {
		return f.zeroLike(), nil
	}

	if err := f.ensure(CoefficientsOnly); err != nil {
		return nil, err
	}

	d := f.zeroLike()
	differentiate(d.coefs, f.coefs, axis)
	d.coefs.Scale(2 / f.bounds[axis].Span())
	d.state = CoefficientsOnly

	return d, nil
}

// differentiate stores in dst the Chebyshev coefficients of the derivative
// of the series in src along axis, with respect to the canonical variable.
//
// For each line of np coefficients c:
//
//	d[np-1] = 0
//	d[np-2] = 2(np-1) c[np-1]
//	d[k]    = d[k+2] + 2(k+1) c[k+1]
//	d[0]   /= 2
func differentiate(dst, src *tensor.Dense, axis Axis) {
	np := axisLen(src.Dims(), axis)
	in := src.Data()
	out := dst.Data()

	for _, g := range axisLines(src.Dims(), axis) {
		for l := range g.count {
			start := g.offset + l*g.step
			at := func(k int) int { return start + k*g.stride }

			out[at(np-1)] = 0
			out[at(np-2)] = 2 * float64(np-1) * in[at(np-1)]

			for k := np - 3; k >= 0; k-- {
				out[at(k)] = out[at(k+2)] + 2*float64(k+1)*in[at(k+1)]
			}

			out[at(0)] *= 0.5
		}
	}
}
