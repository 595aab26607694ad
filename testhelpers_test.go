package cheb3d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/cheb3d/tensor"
)

// Shared test helper functions used across multiple test files

const tol = 1e-10

type field func(x, y, z float64) float64

// newField returns a function on an isolated cache whose samples are fn at
// the grid nodes.
func newField(t *testing.T, nx, ny, nz int, bounds Bounds, fn field) *Function {
	t.Helper()

	f, err := NewWithOptions(nx, ny, nz, Options{Cache: NewCache(CacheOptions{}), Bounds: bounds})
	require.NoError(t, err)

	fill(t, f, fn)

	return f
}

func fill(t *testing.T, f *Function, fn field) {
	t.Helper()

	gx, gy, gz := f.Grid(X), f.Grid(Y), f.Grid(Z)

	require.NoError(t, f.UpdateValues(func(v *tensor.Dense) {
		for i, x := range gx {
			for j, y := range gy {
				for k, z := range gz {
					v.Set(i, j, k, fn(x, y, z))
				}
			}
		}
	}))
}

func randomTensor(t *testing.T, seed int64, nx, ny, nz int) *tensor.Dense {
	t.Helper()

	d, err := tensor.New(nx, ny, nz)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	for i := range d.Data() {
		d.Data()[i] = 2*rng.Float64() - 1
	}

	return d
}

func requireTensorNear(t *testing.T, want, got *tensor.Dense, delta float64) {
	t.Helper()

	require.Equal(t, want.Dims(), got.Dims())
	require.InDeltaSlice(t, want.Data(), got.Data(), delta)
}

// chebT evaluates T_k(x) for x in [-1, 1].
func chebT(k int, x float64) float64 {
	return math.Cos(float64(k) * math.Acos(math.Max(-1, math.Min(1, x))))
}

// smooth is a non-polynomial test field.
func smooth(x, y, z float64) float64 {
	return math.Exp(0.3*x) * math.Cos(y-0.2) * (1 + 0.5*z*z)
}
