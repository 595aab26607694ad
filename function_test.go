package cheb3d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/cheb3d/tensor"
)

func TestNewFunction(t *testing.T) {
	t.Parallel()

	f, err := New(5, 1, 7)
	require.NoError(t, err)
	require.Equal(t, tensor.Dims{NX: 5, NY: 1, NZ: 7}, f.Dims())
	require.Equal(t, UnitBounds, f.Bounds())
	require.Equal(t, Both, f.State())
	require.Same(t, DefaultCache, f.Transformer().Cache())

	require.Equal(t, []float64{0}, f.Grid(Y))
	require.InDeltaSlice(t, ChebyshevNodes(5, -1, 1), f.Grid(X), 0)

	v, err := f.Values()
	require.NoError(t, err)
	require.Zero(t, v.MaxAbs())
}

func TestNewFunctionBadDims(t *testing.T) {
	t.Parallel()

	for _, d := range [][3]int{{1, 5, 5}, {0, 1, 1}, {5, 0, 1}, {5, 1, -1}} {
		_, err := New(d[0], d[1], d[2])
		require.ErrorIs(t, err, ErrBadDims, "dims %v", d)
	}

	_, err := NewWithOptions(5, 5, 1, Options{Bounds: Bounds{{0, 1}, {2, 2}, {0, 0}}})
	require.ErrorIs(t, err, ErrBadBounds)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	v := randomTensor(t, 3, 9, 1, 5)

	f, err := FromValues(v)
	require.NoError(t, err)
	require.Equal(t, ValuesOnly, f.State())

	v.Set(0, 0, 0, 99)

	got, err := f.Values()
	require.NoError(t, err)
	require.NotEqual(t, 99.0, got.At(0, 0, 0), "FromValues must copy")

	_, err = FromValues(nil)
	require.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = FromValues(randomTensor(t, 1, 1, 5, 5))
	require.ErrorIs(t, err, ErrBadDims)
}

func TestRepresentationProtocol(t *testing.T) {
	t.Parallel()

	f := newField(t, 9, 5, 1, UnitBounds, smooth)
	require.Equal(t, ValuesOnly, f.State())

	require.ErrorIs(t, f.ComputeValues(), ErrCoefficientsNotValid)

	require.NoError(t, f.ComputeCoefficients())
	require.Equal(t, Both, f.State())

	c, err := f.Coefficients()
	require.NoError(t, err)

	g, err := NewWithOptions(9, 5, 1, Options{Cache: f.Transformer().Cache()})
	require.NoError(t, err)
	require.NoError(t, g.SetCoefficients(c))
	require.Equal(t, CoefficientsOnly, g.State())
	require.ErrorIs(t, g.ComputeCoefficients(), ErrValuesNotValid)

	require.NoError(t, g.ComputeValues())
	require.Equal(t, Both, g.State())

	fv, err := f.Values()
	require.NoError(t, err)

	gv, err := g.Values()
	require.NoError(t, err)
	requireTensorNear(t, fv, gv, 1e-12)

	g.SetScalar(2.5)
	require.Equal(t, ValuesOnly, g.State())
	require.Equal(t, 2.5, g.values.Max())
	require.Equal(t, 2.5, g.values.Min())

	require.ErrorIs(t, g.SetValues(randomTensor(t, 1, 5, 5, 1)), ErrShapeMismatch)
	require.ErrorIs(t, g.SetCoefficients(nil), ErrShapeMismatch)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	f := newField(t, 5, 5, 5, UnitBounds, smooth)
	require.NoError(t, f.ComputeCoefficients())

	_, err := f.PartialX()
	require.NoError(t, err)

	c := f.Clone()
	require.Equal(t, f.State(), c.State())
	require.Nil(t, c.partials[X], "memoized derivatives are not shared")

	c.SetScalar(1)

	fv, err := f.Values()
	require.NoError(t, err)
	require.NotEqual(t, 1.0, fv.Max())
	require.Equal(t, Both, f.State())
}

func TestSetBounds(t *testing.T) {
	t.Parallel()

	f := newField(t, 9, 1, 5, UnitBounds, smooth)
	require.NoError(t, f.ComputeCoefficients())

	before, err := f.Values()
	require.NoError(t, err)

	before = before.Clone()

	_, err = f.PartialZ()
	require.NoError(t, err)

	require.NoError(t, f.SetBounds(0, 2, -1, 1, -4, 4))
	require.Equal(t, ValuesOnly, f.State())
	require.Nil(t, f.partials[Z])
	require.Equal(t, Bounds{{0, 2}, {-1, 1}, {-4, 4}}, f.Bounds())
	require.InDeltaSlice(t, ChebyshevNodes(9, 0, 2), f.Grid(X), 0)
	require.InDeltaSlice(t, ChebyshevNodes(5, -4, 4), f.Grid(Z), 0)

	after, err := f.Values()
	require.NoError(t, err)
	requireTensorNear(t, before, after, 0)

	require.ErrorIs(t, f.SetBounds(1, 1, 0, 0, 0, 1), ErrBadBounds)
	require.ErrorIs(t, f.SetBounds(0, 1, 0, 0, 2, 1), ErrBadBounds)
}

func TestSetBoundsFromCoefficientsOnly(t *testing.T) {
	t.Parallel()

	f := newField(t, 7, 1, 1, UnitBounds, smooth)

	c, err := f.Coefficients()
	require.NoError(t, err)

	want, err := f.Values()
	require.NoError(t, err)

	g, err := NewWithOptions(7, 1, 1, Options{Cache: f.Transformer().Cache()})
	require.NoError(t, err)
	require.NoError(t, g.SetCoefficients(c))

	require.NoError(t, g.SetDomain(Bounds{{-3, 3}, {0, 0}, {0, 0}}))
	require.Equal(t, ValuesOnly, g.State())

	got, err := g.Values()
	require.NoError(t, err)
	requireTensorNear(t, want, got, 1e-12)
}

func TestRepresentationString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "values", ValuesOnly.String())
	require.Equal(t, "coefficients", CoefficientsOnly.String())
	require.Equal(t, "both", Both.String())
	require.Equal(t, "invalid", Representation(0).String())

	require.True(t, Both.HasValues())
	require.True(t, Both.HasCoefficients())
	require.False(t, ValuesOnly.HasCoefficients())
	require.False(t, CoefficientsOnly.HasValues())
}

func TestFailedTransformLeavesSourceOnly(t *testing.T) {
	t.Parallel()

	cache := NewCache(CacheOptions{Capacity: 1})

	f, err := NewWithOptions(9, 1, 1, Options{Cache: cache})
	require.NoError(t, err)
	fill(t, f, func(x, _, _ float64) float64 { return x * x })

	require.NoError(t, f.ComputeCoefficients())
	require.Equal(t, Both, f.State())

	// Fill every registry with plans for another length.
	cache.Reset()
	require.NoError(t, cache.Prepare(5))

	t.Run("forward", func(t *testing.T) {
		g := f.Clone()

		require.ErrorIs(t, g.ComputeCoefficients(), ErrCacheFull)
		require.Equal(t, ValuesOnly, g.State())

		_, err := g.Eval(0.5, 0, 0)
		require.ErrorIs(t, err, ErrCoefficientsNotValid)

		v, err := g.Values()
		require.NoError(t, err)

		for i, x := range g.Grid(X) {
			require.InDelta(t, x*x, v.At(i, 0, 0), tol)
		}
	})

	t.Run("inverse", func(t *testing.T) {
		g := f.Clone()
		c, err := g.Coefficients()
		require.NoError(t, err)

		want := c.Clone()
		require.NoError(t, g.SetCoefficients(want))

		require.ErrorIs(t, g.ComputeValues(), ErrCacheFull)
		require.Equal(t, CoefficientsOnly, g.State())

		_, err = Max(g)
		require.ErrorIs(t, err, ErrValuesNotValid)

		v, err := g.Eval(0.5, 0, 0)
		require.NoError(t, err)
		require.InDelta(t, 0.25, v, tol)
	})
}
