package cheb3d

import (
	"fmt"

	"github.com/cwbudde/cheb3d/tensor"
)

// InterpolationMethod selects the 1D scheme used by InterpolateFrom.
type InterpolationMethod int

const (
	// Quadratic fits a parabola through three neighbouring samples.
	Quadratic InterpolationMethod = iota
	// Linear joins neighbouring samples with straight segments.
	Linear
)

func (m InterpolationMethod) String() string {
	if m == Linear {
		return "linear"
	}

	return "quadratic"
}

// InterpolationOptions configures InterpolateFromWithOptions.
type InterpolationOptions struct {
	Method InterpolationMethod
}

const gridSlack = 1e-12

// InterpolateFrom resamples src, whose samples sit at gx × gy × gz, onto the
// grid of f using quadratic interpolation. See InterpolateFromWithOptions.
func (f *Function) InterpolateFrom(src *tensor.Dense, gx, gy, gz []float64) error {
	return f.InterpolateFromWithOptions(src, gx, gy, gz, InterpolationOptions{})
}

// InterpolateFromWithOptions resamples src onto the grid of f by three
// separable 1D passes along x, y and z. Each source grid must be strictly
// increasing and must cover f's nodes; a single-point axis of f has its node
// at 0. The result replaces the samples of f.
func (f *Function) InterpolateFromWithOptions(src *tensor.Dense, gx, gy, gz []float64, opts InterpolationOptions) error {
	if src == nil {
		return tensor.ErrNilTensor
	}

	srcGrids := [3][]float64{gx, gy, gz}
	sd := src.Dims()

	for _, a := range Axes {
		if err := f.checkSourceGrid(a, srcGrids[a], axisLen(sd, a)); err != nil {
			return err
		}
	}

	cur := src
	dims := sd

	for _, a := range Axes {
		next := dims
		switch a {
		case X:
			next.NX = f.dims.NX
		case Y:
			next.NY = f.dims.NY
		default:
			next.NZ = f.dims.NZ
		}

		out, err := tensor.New(next.NX, next.NY, next.NZ)
		if err != nil {
			return err
		}

		resampleAxis(out, cur, a, srcGrids[a], f.grids[a], opts.Method)

		cur = out
		dims = next
	}

	f.values.CopyFrom(cur)
	f.invalidate(ValuesOnly)

	return nil
}

// Resample interpolates g onto the grid of f.
func (f *Function) Resample(g *Function) error {
	if g == nil {
		return ErrNilFunction
	}

	v, err := g.Values()
	if err != nil {
		return err
	}

	return f.InterpolateFrom(v, g.grids[X], g.grids[Y], g.grids[Z])
}

func (f *Function) checkSourceGrid(axis Axis, grid []float64, n int) error {
	if len(grid) != n {
		return fmt.Errorf("%w: %v grid has %d points for %d samples", ErrShapeMismatch, axis, len(grid), n)
	}

	for i := 1; i < n; i++ {
		if !(grid[i] > grid[i-1]) {
			return fmt.Errorf("%w: %v grid at %d", ErrNotMonotonic, axis, i)
		}
	}

	dst := f.grids[axis]

	if n == 1 {
		if len(dst) != 1 {
			return fmt.Errorf("%w: %v source has a single point", ErrOutOfRange, axis)
		}

		return nil
	}

	// Allow for rounding in the node formula at the interval ends.
	slack := gridSlack * (grid[n-1] - grid[0])
	if dst[0] < grid[0]-slack || dst[len(dst)-1] > grid[n-1]+slack {
		return fmt.Errorf("%w: %v [%g, %g] not within [%g, %g]", ErrOutOfRange,
			axis, dst[0], dst[len(dst)-1], grid[0], grid[n-1])
	}

	return nil
}

// resampleAxis interpolates every line of src along axis from positions xs
// to positions xd and stores the result in dst, which has len(xd) points
// along axis and the dimensions of src elsewhere.
func resampleAxis(dst, src *tensor.Dense, axis Axis, xs, xd []float64, method InterpolationMethod) {
	srcLines := axisLines(src.Dims(), axis)
	dstLines := axisLines(dst.Dims(), axis)

	for gi, sg := range srcLines {
		dg := dstLines[gi]
		for l := range sg.count {
			resampleLine(
				dst.Data(), dg.offset+l*dg.step, dg.stride, xd,
				src.Data(), sg.offset+l*sg.step, sg.stride, xs,
				method,
			)
		}
	}
}

// resampleLine interpolates one line in a single forward sweep. Both xs and
// xd are increasing, so the source interval only ever moves right.
func resampleLine(dst []float64, dstStart, dstStride int, xd []float64,
	src []float64, srcStart, srcStride int, xs []float64, method InterpolationMethod,
) {
	ns := len(xs)
	y := func(j int) float64 { return src[srcStart+j*srcStride] }

	if ns == 1 {
		for i := range xd {
			dst[dstStart+i*dstStride] = y(0)
		}

		return
	}

	j := 0

	for i, x := range xd {
		for j < ns-2 && xs[j+1] < x {
			j++
		}

		var v float64

		if method == Linear || ns < 3 {
			v = linear(x, xs[j], xs[j+1], y(j), y(j+1))
		} else {
			j0 := min(j, ns-3)
			v = quadratic(x, xs[j0:j0+3], y(j0), y(j0+1), y(j0+2))
		}

		dst[dstStart+i*dstStride] = v
	}
}

func linear(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// quadratic evaluates the Newton form of the parabola through three points.
func quadratic(x float64, xs []float64, y0, y1, y2 float64) float64 {
	x0, x1, x2 := xs[0], xs[1], xs[2]
	f01 := (y1 - y0) / (x1 - x0)
	f12 := (y2 - y1) / (x2 - x1)
	f012 := (f12 - f01) / (x2 - x0)

	return y0 + f01*(x-x0) + f012*(x-x0)*(x-x1)
}
