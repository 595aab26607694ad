package fft

import "gonum.org/v1/gonum/dsp/fourier"

// gonumPlan wraps a gonum real FFT. fourier.FFT uses the same kernel sign and
// leaves both directions unnormalized.
type gonumPlan struct {
	dir  Direction
	buf  []float64
	fft  *fourier.FFT
	spec []complex128
	work []float64
}

func newGonumPlan(dir Direction, buf []float64) *gonumPlan {
	n := len(buf)

	return &gonumPlan{
		dir:  dir,
		buf:  buf,
		fft:  fourier.NewFFT(n),
		spec: make([]complex128, n/2+1),
		work: make([]float64, n),
	}
}

func (p *gonumPlan) Len() int { return len(p.buf) }

func (p *gonumPlan) Execute() {
	if p.dir == Forward {
		p.fft.Coefficients(p.spec, p.buf)
		packHalfcomplex(p.buf, p.spec)

		return
	}

	unpackHalfcomplex(p.spec, p.buf)
	p.fft.Sequence(p.work, p.spec)
	copy(p.buf, p.work)
}
