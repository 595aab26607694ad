package cheb3d

import (
	"fmt"
	"math"
)

// ChebyshevNodes returns the n Chebyshev–Gauss–Lobatto nodes of [lo, hi] in
// increasing order: x_i = ((lo-hi)*cos(i*pi/(n-1)) + lo + hi)/2.
// A single node is placed at 0.
func ChebyshevNodes(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{0}
	}

	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = 0.5 * ((lo-hi)*math.Cos(float64(i)*math.Pi/float64(n-1)) + lo + hi)
	}

	return nodes
}

// SetBounds changes the domain and regenerates the grids. The samples stay
// attached to their node indices; the coefficients and memoized derivatives
// are invalidated. When only the coefficients were current, the samples are
// computed first.
func (f *Function) SetBounds(xmin, xmax, ymin, ymax, zmin, zmax float64) error {
	return f.SetDomain(Bounds{{xmin, xmax}, {ymin, ymax}, {zmin, zmax}})
}

// SetDomain is SetBounds taking a Bounds value.
func (f *Function) SetDomain(b Bounds) error {
	if err := f.checkBounds(b); err != nil {
		return err
	}

	if !f.state.HasValues() {
		if err := f.ComputeValues(); err != nil {
			return err
		}
	}

	if err := f.setBounds(b); err != nil {
		return err
	}

	f.invalidate(ValuesOnly)

	return nil
}

func (f *Function) checkBounds(b Bounds) error {
	for _, a := range Axes {
		iv := b[a]
		if axisLen(f.dims, a) > 1 && !(iv.Min < iv.Max) {
			return fmt.Errorf("%w: %v axis [%g, %g]", ErrBadBounds, a, iv.Min, iv.Max)
		}
	}

	return nil
}

func (f *Function) setBounds(b Bounds) error {
	if err := f.checkBounds(b); err != nil {
		return err
	}

	f.bounds = b

	for _, a := range Axes {
		f.grids[a] = ChebyshevNodes(axisLen(f.dims, a), b[a].Min, b[a].Max)
	}

	return nil
}
