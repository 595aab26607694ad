package cheb3d

import (
	"fmt"

	"github.com/cwbudde/cheb3d/tensor"
)

// Options configures the construction of a Function.
type Options struct {
	// Cache supplies transform plans. Nil selects DefaultCache.
	Cache *Cache

	// Bounds is the domain of the function. The zero value selects
	// UnitBounds.
	Bounds Bounds
}

// Function is a scalar field on a tensor-product Chebyshev–Gauss–Lobatto
// grid, held as physical samples, as Chebyshev coefficients, or both.
//
// The representation that is not current is recomputed on demand. The
// derivative along each axis is memoized until the coefficients change.
// A Function is not safe for concurrent mutation.
type Function struct {
	dims   tensor.Dims
	bounds Bounds
	grids  [3][]float64

	values *tensor.Dense
	coefs  *tensor.Dense
	state  Representation

	partials [3]*Function
	tr       *Transformer
}

// New returns the zero function on an nx*ny*nz grid over UnitBounds.
// nx must be > 1; ny and nz must be >= 1.
func New(nx, ny, nz int) (*Function, error) {
	return NewWithOptions(nx, ny, nz, Options{})
}

// NewWithOptions is like New with explicit options.
func NewWithOptions(nx, ny, nz int, opts Options) (*Function, error) {
	if nx <= 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrBadDims, nx, ny, nz)
	}

	values, err := tensor.New(nx, ny, nz)
	if err != nil {
		return nil, err
	}

	f := &Function{
		dims:   values.Dims(),
		values: values,
		coefs:  values.Clone(),
		state:  Both,
		tr:     NewTransformer(opts.Cache),
	}

	bounds := opts.Bounds
	if bounds == (Bounds{}) {
		bounds = UnitBounds
	}

	if err := f.setBounds(bounds); err != nil {
		return nil, err
	}

	return f, nil
}

// FromValues returns a function whose samples are a copy of v, over
// UnitBounds.
func FromValues(v *tensor.Dense) (*Function, error) {
	return FromValuesWithOptions(v, Options{})
}

// FromValuesWithOptions is like FromValues with explicit options.
func FromValuesWithOptions(v *tensor.Dense, opts Options) (*Function, error) {
	if v == nil {
		return nil, tensor.ErrNilTensor
	}

	d := v.Dims()

	f, err := NewWithOptions(d.NX, d.NY, d.NZ, opts)
	if err != nil {
		return nil, err
	}

	f.values.CopyFrom(v)
	f.state = ValuesOnly

	return f, nil
}

// Clone returns a deep copy of f sharing only its plan cache. Memoized
// derivatives are not copied.
func (f *Function) Clone() *Function {
	c := &Function{
		dims:   f.dims,
		bounds: f.bounds,
		values: f.values.Clone(),
		coefs:  f.coefs.Clone(),
		state:  f.state,
		tr:     f.tr,
	}

	for a := range f.grids {
		c.grids[a] = append([]float64(nil), f.grids[a]...)
	}

	return c
}

// zeroLike returns a zero function with the grid, bounds and cache of f.
func (f *Function) zeroLike() *Function {
	values := f.values.Clone()
	values.Fill(0)

	c := &Function{
		dims:   f.dims,
		bounds: f.bounds,
		values: values,
		coefs:  values.Clone(),
		state:  Both,
		tr:     f.tr,
	}

	for a := range f.grids {
		c.grids[a] = append([]float64(nil), f.grids[a]...)
	}

	return c
}

// Dims returns the grid size.
func (f *Function) Dims() tensor.Dims { return f.dims }

// Bounds returns the domain.
func (f *Function) Bounds() Bounds { return f.bounds }

// Grid returns a copy of the node positions along axis.
func (f *Function) Grid(axis Axis) []float64 {
	return append([]float64(nil), f.grids[axis]...)
}

// State returns the current representation.
func (f *Function) State() Representation { return f.state }

// Transformer returns the transformer used by f.
func (f *Function) Transformer() *Transformer { return f.tr }

// SameDomain reports whether f and g have identical bounds on every axis.
func (f *Function) SameDomain(g *Function) bool {
	return f.bounds == g.bounds
}

// SetScalar makes f the constant function a.
func (f *Function) SetScalar(a float64) {
	f.values.Fill(a)
	f.invalidate(ValuesOnly)
}

// SetValues replaces the samples of f with a copy of v.
func (f *Function) SetValues(v *tensor.Dense) error {
	if !tensor.SameShape(f.values, v) {
		return fmt.Errorf("%w: values %v for grid %v", ErrShapeMismatch, dimsOf(v), f.dims)
	}

	f.values.CopyFrom(v)
	f.invalidate(ValuesOnly)

	return nil
}

// SetCoefficients replaces the coefficients of f with a copy of c.
func (f *Function) SetCoefficients(c *tensor.Dense) error {
	if !tensor.SameShape(f.coefs, c) {
		return fmt.Errorf("%w: coefficients %v for grid %v", ErrShapeMismatch, dimsOf(c), f.dims)
	}

	f.coefs.CopyFrom(c)
	f.invalidate(CoefficientsOnly)

	return nil
}

// UpdateValues calls fn with the sample tensor for in-place editing and
// marks the samples as the only current representation.
func (f *Function) UpdateValues(fn func(v *tensor.Dense)) error {
	if err := f.ensure(ValuesOnly); err != nil {
		return err
	}

	fn(f.values)
	f.invalidate(ValuesOnly)

	return nil
}

// Values returns the sample tensor, computing it from the coefficients if
// needed. The tensor is owned by f and must not be modified.
func (f *Function) Values() (*tensor.Dense, error) {
	if err := f.ensure(ValuesOnly); err != nil {
		return nil, err
	}

	return f.values, nil
}

// Coefficients returns the coefficient tensor, computing it from the samples
// if needed. The tensor is owned by f and must not be modified.
func (f *Function) Coefficients() (*tensor.Dense, error) {
	if err := f.ensure(CoefficientsOnly); err != nil {
		return nil, err
	}

	return f.coefs, nil
}

// ComputeCoefficients transforms the samples into coefficients. It fails
// with ErrValuesNotValid when the samples are not current. If the transform
// fails, f is left holding only its samples.
func (f *Function) ComputeCoefficients() error {
	if !f.state.HasValues() {
		return ErrValuesNotValid
	}

	// The coefficients are overwritten in place; they stay invalid unless
	// the transform completes.
	f.invalidate(ValuesOnly)
	f.coefs.CopyFrom(f.values)

	if err := f.tr.Forward(f.coefs); err != nil {
		return err
	}

	f.state = Both

	return nil
}

// ComputeValues transforms the coefficients into samples. It fails with
// ErrCoefficientsNotValid when the coefficients are not current. If the
// transform fails, f is left holding only its coefficients.
func (f *Function) ComputeValues() error {
	if !f.state.HasCoefficients() {
		return ErrCoefficientsNotValid
	}

	f.invalidate(CoefficientsOnly)
	f.values.CopyFrom(f.coefs)

	if err := f.tr.Inverse(f.values); err != nil {
		return err
	}

	f.state = Both

	return nil
}

// ensure makes the representation want current, transforming if needed.
func (f *Function) ensure(want Representation) error {
	switch {
	case want.HasValues() && !f.state.HasValues():
		if err := f.ComputeValues(); err != nil {
			return err
		}
	case want.HasCoefficients() && !f.state.HasCoefficients():
		if err := f.ComputeCoefficients(); err != nil {
			return err
		}
	}

	return nil
}

// invalidate records that only r is current after a mutation and drops the
// memoized derivatives.
func (f *Function) invalidate(r Representation) {
	f.state = r
	f.dropPartials()
}

func (f *Function) dropPartials() {
	f.partials = [3]*Function{}
}

func dimsOf(t *tensor.Dense) any {
	if t == nil {
		return "nil"
	}

	return t.Dims()
}

func (f *Function) String() string {
	return fmt.Sprintf("Function(%v, x=[%g,%g] y=[%g,%g] z=[%g,%g], %v)", f.dims,
		f.bounds[X].Min, f.bounds[X].Max, f.bounds[Y].Min, f.bounds[Y].Max,
		f.bounds[Z].Min, f.bounds[Z].Max, f.state)
}
