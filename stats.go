package cheb3d

import (
	"github.com/montanaflynn/stats"
)

// sampleStat applies fn to the samples of f, which must be current.
func sampleStat(f *Function, fn func(stats.Float64Data) (float64, error)) (float64, error) {
	if err := checkOperand(f); err != nil {
		return 0, err
	}

	if !f.state.HasValues() {
		return 0, ErrValuesNotValid
	}

	return fn(f.values.Data())
}

// Max returns the largest sample of f. The samples must be current
// (ErrValuesNotValid otherwise).
func Max(f *Function) (float64, error) { return sampleStat(f, stats.Max) }

// Min returns the smallest sample of f.
func Min(f *Function) (float64, error) { return sampleStat(f, stats.Min) }

// Mean returns the arithmetic mean of the samples of f. Chebyshev nodes are
// not equally spaced, so this is not the mean value of f over its domain.
func Mean(f *Function) (float64, error) { return sampleStat(f, stats.Mean) }

// MaxAbs returns the largest absolute sample of f.
func MaxAbs(f *Function) (float64, error) {
	if err := checkOperand(f); err != nil {
		return 0, err
	}

	if !f.state.HasValues() {
		return 0, ErrValuesNotValid
	}

	return f.values.MaxAbs(), nil
}

// Integral returns the integral of f over its domain, computed from the
// coefficients with the closed form of the integral of T_k over [-1, 1].
func Integral(f *Function) (float64, error) {
	if err := checkOperand(f); err != nil {
		return 0, err
	}

	if err := f.ensure(CoefficientsOnly); err != nil {
		return 0, err
	}

	var w [3][]float64

	jacobian := 1.0

	for _, a := range Axes {
		n := axisLen(f.dims, a)
		w[a] = chebyshevWeights(n)

		if n > 1 {
			jacobian *= f.bounds[a].Span() / 2
		}
	}

	c := f.coefs.Data()

	var sum float64

	idx := 0

	for i := range w[X] {
		for j := range w[Y] {
			wxy := w[X][i] * w[Y][j]
			for k := range w[Z] {
				sum += c[idx] * wxy * w[Z][k]
				idx++
			}
		}
	}

	return sum * jacobian, nil
}

// chebyshevWeights returns the integrals of T_k over [-1, 1] for k < n:
// 2/(1-k^2) for even k, 0 for odd k. A single-point axis has weight 1.
func chebyshevWeights(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}

	w := make([]float64, n)
	for k := 0; k < n; k += 2 {
		w[k] = 2 / (1 - float64(k*k))
	}

	return w
}
