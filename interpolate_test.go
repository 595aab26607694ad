package cheb3d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/cheb3d/tensor"
)

func uniformGrid(n int, lo, hi float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}

	g[n-1] = hi

	return g
}

func sampleOn(t *testing.T, gx, gy, gz []float64, fn field) *tensor.Dense {
	t.Helper()

	d, err := tensor.New(len(gx), len(gy), len(gz))
	require.NoError(t, err)

	for i, x := range gx {
		for j, y := range gy {
			for k, z := range gz {
				d.Set(i, j, k, fn(x, y, z))
			}
		}
	}

	return d
}

func TestInterpolateExactForLowDegree(t *testing.T) {
	t.Parallel()

	bounds := Bounds{{0, 2}, {-1, 1}, {1, 3}}
	gx := uniformGrid(11, 0, 2)
	gy := uniformGrid(6, -1, 1)
	gz := uniformGrid(4, 1, 3)

	cases := []struct {
		name   string
		method InterpolationMethod
		fn     field
	}{
		{"linear", Linear, func(x, y, z float64) float64 { return 1 + 2*x - y + 0.5*z }},
		{"quadratic", Quadratic, func(x, y, z float64) float64 { return x*x - 3*y*y + x*z - y + 2 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewWithOptions(9, 5, 5, Options{Cache: NewCache(CacheOptions{}), Bounds: bounds})
			require.NoError(t, err)

			src := sampleOn(t, gx, gy, gz, tc.fn)
			require.NoError(t, f.InterpolateFromWithOptions(src, gx, gy, gz, InterpolationOptions{Method: tc.method}))
			require.Equal(t, ValuesOnly, f.State())

			want := sampleOn(t, f.Grid(X), f.Grid(Y), f.Grid(Z), tc.fn)
			got, err := f.Values()
			require.NoError(t, err)
			requireTensorNear(t, want, got, 1e-12)
		})
	}
}

func TestInterpolateFromOwnGrid(t *testing.T) {
	t.Parallel()

	f := newField(t, 7, 5, 3, UnitBounds, smooth)

	values, err := f.Values()
	require.NoError(t, err)

	want := values.Clone()

	require.NoError(t, f.InterpolateFrom(want.Clone(), f.Grid(X), f.Grid(Y), f.Grid(Z)))

	got, err := f.Values()
	require.NoError(t, err)
	requireTensorNear(t, want, got, 1e-12)
}

func TestInterpolateDegenerateAxes(t *testing.T) {
	t.Parallel()

	f, err := NewWithOptions(5, 1, 1, Options{Cache: NewCache(CacheOptions{})})
	require.NoError(t, err)

	// A single-point destination axis samples the source at 0.
	gx := uniformGrid(9, -1, 1)
	gy := uniformGrid(5, -1, 1)
	src := sampleOn(t, gx, gy, []float64{7}, func(x, y, _ float64) float64 { return x + y + 1 })

	require.NoError(t, f.InterpolateFrom(src, gx, gy, []float64{7}))

	got, err := f.Values()
	require.NoError(t, err)

	for i, x := range f.Grid(X) {
		require.InDelta(t, x+1, got.At(i, 0, 0), 1e-12)
	}
}

func TestInterpolateErrors(t *testing.T) {
	t.Parallel()

	f, err := NewWithOptions(5, 5, 1, Options{Cache: NewCache(CacheOptions{})})
	require.NoError(t, err)

	gx := uniformGrid(6, -1, 1)
	gy := uniformGrid(4, -1, 1)
	gz := []float64{0}
	src, err := tensor.New(6, 4, 1)
	require.NoError(t, err)

	require.NoError(t, f.InterpolateFrom(src, gx, gy, gz))

	cases := []struct {
		name       string
		gx, gy, gz []float64
		want       error
	}{
		{"grid length", gx[:5], gy, gz, ErrShapeMismatch},
		{"not increasing", []float64{-1, -0.5, 0, 0, 0.5, 1}, gy, gz, ErrNotMonotonic},
		{"decreasing", gx, []float64{1, 0.5, -0.5, -1}, gz, ErrNotMonotonic},
		{"too narrow", uniformGrid(6, -0.5, 1), gy, gz, ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := f.Clone()
			require.ErrorIs(t, g.InterpolateFrom(src, tc.gx, tc.gy, tc.gz), tc.want)
		})
	}

	single, err := tensor.New(1, 4, 1)
	require.NoError(t, err)
	require.ErrorIs(t, f.InterpolateFrom(single, []float64{0}, gy, gz), ErrOutOfRange)

	// The single z node sits at 0, outside [0.5, 2].
	thick, err := tensor.New(6, 4, 3)
	require.NoError(t, err)
	require.ErrorIs(t, f.InterpolateFrom(thick, gx, gy, []float64{0.5, 1, 2}), ErrOutOfRange)
	require.NoError(t, f.InterpolateFrom(thick, gx, gy, []float64{-0.5, 1, 2}))

	require.ErrorIs(t, f.InterpolateFrom(nil, gx, gy, gz), tensor.ErrNilTensor)
}

func TestResample(t *testing.T) {
	t.Parallel()

	quad := func(x, y, _ float64) float64 { return 2*x*x - x*y + 3 }
	fine := newField(t, 17, 9, 1, UnitBounds, quad)

	// Leave only the coefficients current; Resample has to synthesize.
	require.NoError(t, fine.ComputeCoefficients())
	c, err := fine.Coefficients()
	require.NoError(t, err)
	require.NoError(t, fine.SetCoefficients(c.Clone()))

	coarse, err := NewWithOptions(5, 5, 1, Options{Cache: NewCache(CacheOptions{})})
	require.NoError(t, err)
	require.NoError(t, coarse.Resample(fine))

	want := sampleOn(t, coarse.Grid(X), coarse.Grid(Y), coarse.Grid(Z), quad)
	got, err := coarse.Values()
	require.NoError(t, err)
	requireTensorNear(t, want, got, 1e-10)

	require.ErrorIs(t, coarse.Resample(nil), ErrNilFunction)
}

func TestInterpolationMethodString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "quadratic", Quadratic.String())
	require.Equal(t, "linear", Linear.String())
}
