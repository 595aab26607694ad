package cheb3d

import (
	"fmt"

	"github.com/cwbudde/cheb3d/internal/fft"
	"github.com/cwbudde/cheb3d/tensor"
)

// Transformer converts tensors between samples at Chebyshev–Gauss–Lobatto
// nodes and Chebyshev coefficients, one axis at a time.
//
// Along an axis of np = n+1 points the samples are taken at
// xi_i = -cos(i*pi/n), i = 0..n, and the coefficients c_k satisfy
// f(xi) = sum_k c_k T_k(xi). Each transform is carried out by a real FFT of
// size n on an auxiliary sequence built from the even and odd parts of the
// samples.
type Transformer struct {
	cache *Cache
}

// NewTransformer returns a transformer drawing plans from cache.
// A nil cache selects DefaultCache.
func NewTransformer(cache *Cache) *Transformer {
	if cache == nil {
		cache = DefaultCache
	}

	return &Transformer{cache: cache}
}

// Cache returns the plan cache used by tr.
func (tr *Transformer) Cache() *Cache { return tr.cache }

// lines describes a family of equally spaced 1D lines in a flat buffer.
type lines struct {
	offset int // first sample of the first line
	count  int // number of lines
	step   int // distance between the first samples of consecutive lines
	stride int // distance between consecutive samples of one line
}

// axisLines returns the line families covering every 1D line of a tensor of
// dims d along axis.
func axisLines(d tensor.Dims, axis Axis) []lines {
	switch axis {
	case X:
		return []lines{{offset: 0, count: d.NY * d.NZ, step: 1, stride: d.NY * d.NZ}}
	case Y:
		groups := make([]lines, d.NX)
		for i := range groups {
			groups[i] = lines{offset: i * d.NY * d.NZ, count: d.NZ, step: 1, stride: d.NZ}
		}

		return groups
	default:
		return []lines{{offset: 0, count: d.NX * d.NY, step: d.NZ, stride: 1}}
	}
}

func axisLen(d tensor.Dims, axis Axis) int {
	switch axis {
	case X:
		return d.NX
	case Y:
		return d.NY
	default:
		return d.NZ
	}
}

func checkAxisLength(np int) error {
	if np < 5 || np%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrAxisLength, np)
	}

	return nil
}

// ForwardAxis replaces the samples of t along axis with their Chebyshev
// coefficients.
func (tr *Transformer) ForwardAxis(t *tensor.Dense, axis Axis) error {
	return tr.transformAxis(t, axis, fft.Forward)
}

// InverseAxis replaces the Chebyshev coefficients of t along axis with the
// corresponding samples.
func (tr *Transformer) InverseAxis(t *tensor.Dense, axis Axis) error {
	return tr.transformAxis(t, axis, fft.Inverse)
}

// Forward transforms t in place along x, y and z, skipping axes of length 1.
func (tr *Transformer) Forward(t *tensor.Dense) error {
	return tr.transformAll(t, fft.Forward)
}

// Inverse is the inverse of Forward.
func (tr *Transformer) Inverse(t *tensor.Dense) error {
	return tr.transformAll(t, fft.Inverse)
}

func (tr *Transformer) transformAll(t *tensor.Dense, dir fft.Direction) error {
	for _, axis := range Axes {
		if axisLen(t.Dims(), axis) == 1 {
			continue
		}

		if err := tr.transformAxis(t, axis, dir); err != nil {
			return fmt.Errorf("%s transform along %v: %w", dir, axis, err)
		}
	}

	return nil
}

func (tr *Transformer) transformAxis(t *tensor.Dense, axis Axis, dir fft.Direction) error {
	if axis < X || axis > Z {
		return fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}

	np := axisLen(t.Dims(), axis)
	if err := checkAxisLength(np); err != nil {
		return err
	}

	data := t.Data()
	groups := axisLines(t.Dims(), axis)

	return tr.cache.with(dir, np, func(e *planEntry, sines []float64) {
		line := forwardLine
		if dir == fft.Inverse {
			line = inverseLine
		}

		for _, g := range groups {
			for l := range g.count {
				line(data, g.offset+l*g.step, g.stride, e, sines)
			}
		}
	})
}

// forwardLine converts the np = len(e.buf)+1 samples data[start+i*stride]
// into Chebyshev coefficients in place.
func forwardLine(data []float64, start, stride int, e *planEntry, sines []float64) {
	g := e.buf
	n := len(g)
	h := n / 2

	at := func(i int) int { return start + i*stride }

	s0, sn := data[at(0)], data[at(n)]

	// Auxiliary sequence: symmetric part plus sine-weighted antisymmetric part.
	fm0 := 0.5 * (s0 - sn)
	g[0] = 0.5 * (s0 + sn)
	g[h] = data[at(h)]

	for i := 1; i < h; i++ {
		si, sj := data[at(i)], data[at(n-i)]
		fp := 0.5 * (si + sj)
		fms := 0.5 * (si - sj) * sines[i]
		g[i] = fp + fms
		g[n-i] = fp - fms
	}

	e.plan.Execute()

	// Even degrees come from the cosine part.
	inv := 1 / float64(n)
	data[at(0)] = g[0] * inv
	data[at(n)] = g[h] * inv

	for m := 1; m < h; m++ {
		data[at(2*m)] = 2 * inv * g[m]
	}

	// Odd degrees: the sine part gives c(2m+1) - c(2m-1). Run the recurrence
	// from zero, then fix c1 with sum over odd k of c_k = -fm0.
	var d, som float64

	data[at(1)] = 0

	for m := 1; m < h; m++ {
		d -= 4 * inv * g[n-m]
		data[at(2*m+1)] = d
		som += d
	}

	c1 := -(fm0 + som) / float64(h)
	for k := 1; k < n; k += 2 {
		data[at(k)] += c1
	}
}

// inverseLine converts the Chebyshev coefficients data[start+k*stride] back
// into samples in place. It undoes forwardLine step by step.
func inverseLine(data []float64, start, stride int, e *planEntry, sines []float64) {
	g := e.buf
	n := len(g)
	h := n / 2

	at := func(i int) int { return start + i*stride }

	c1 := data[at(1)]

	var som float64
	for k := 3; k < n; k += 2 {
		som += data[at(k)] - c1
	}

	fm0 := -(som + float64(h)*c1)

	// Halfcomplex spectrum of the auxiliary sequence, already divided by n.
	g[0] = data[at(0)]
	g[h] = data[at(n)]

	for m := 1; m < h; m++ {
		g[m] = 0.5 * data[at(2*m)]
		g[n-m] = -0.25 * (data[at(2*m+1)] - data[at(2*m-1)])
	}

	e.plan.Execute()

	data[at(0)] = g[0] + fm0
	data[at(n)] = g[0] - fm0
	data[at(h)] = g[h]

	for i := 1; i < h; i++ {
		fp := 0.5 * (g[i] + g[n-i])
		fm := 0.5 * (g[i] - g[n-i]) / sines[i]
		data[at(i)] = fp + fm
		data[at(n-i)] = fp - fm
	}
}
