package fft

import (
	dsp "github.com/mjibson/go-dsp/fft"
)

// goDSPPlan wraps go-dsp. go-dsp allocates its outputs and normalizes the
// inverse by 1/n, so the inverse result is rescaled by n.
type goDSPPlan struct {
	dir  Direction
	buf  []float64
	full []complex128
}

func newGoDSPPlan(dir Direction, buf []float64) *goDSPPlan {
	p := &goDSPPlan{dir: dir, buf: buf}
	if dir == Inverse {
		p.full = make([]complex128, len(buf))
	}

	return p
}

func (p *goDSPPlan) Len() int { return len(p.buf) }

func (p *goDSPPlan) Execute() {
	n := len(p.buf)

	if p.dir == Forward {
		packHalfcomplex(p.buf, dsp.FFTReal(p.buf))
		return
	}

	// Rebuild the full Hermitian spectrum.
	half := n / 2
	unpackHalfcomplex(p.full[:half+1], p.buf)

	for k := 1; k < half; k++ {
		v := p.full[k]
		p.full[n-k] = complex(real(v), -imag(v))
	}

	seq := dsp.IFFT(p.full)
	scale := float64(n)

	for i, v := range seq {
		p.buf[i] = real(v) * scale
	}
}
