// Package cheb3d represents scalar functions on 3D Chebyshev–Gauss–Lobatto
// grids in two interchangeable forms: physical samples at the grid nodes and
// Chebyshev coefficients.
//
// Conversions run one axis at a time through a real FFT of size n-1 (see
// Transformer), drawing plans from a Cache. A Function keeps track of which
// form is current and converts lazily: derivatives and point evaluation work
// on coefficients, interpolation and nonlinear algebra on samples, and linear
// algebra on whichever form both operands share.
//
// Axes that are transformed must have an odd number of points, at least 5.
// The x axis always has more than one point; y and z may be single-point
// axes, in which case they are left untransformed.
//
// Example:
//
//	f, _ := cheb3d.New(17, 1, 1)
//	grid := f.Grid(cheb3d.X)
//	_ = f.UpdateValues(func(v *tensor.Dense) {
//		for i, x := range grid {
//			v.Set(i, 0, 0, x*x)
//		}
//	})
//	df, _ := f.PartialX()
//	slope, _ := df.Eval(0.5, 0, 0) // 1
package cheb3d
