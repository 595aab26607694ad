package fft

// nativePlan is a real FFT built on a half-size complex plan: the n real
// samples are packed as n/2 complex values, transformed, and separated with
// the weights U[k].
type nativePlan struct {
	dir     Direction
	buf     []float64
	inner   *complexPlan
	weight  []complex128
	twiddle []complex128
	packed  []complex128
	spec    []complex128
}

func newNativePlan(dir Direction, buf []float64) *nativePlan {
	n := len(buf)
	half := n / 2

	p := &nativePlan{
		dir:    dir,
		buf:    buf,
		inner:  newComplexPlan(half),
		packed: make([]complex128, half),
		spec:   make([]complex128, half+1),
	}

	if dir == Forward {
		p.weight = realWeights(n)
	} else {
		p.twiddle = inverseTwiddles(n)
	}

	return p
}

func (p *nativePlan) Len() int { return len(p.buf) }

func (p *nativePlan) Execute() {
	if p.dir == Forward {
		p.forward()
	} else {
		p.inverse()
	}
}

func (p *nativePlan) forward() {
	buf := p.buf
	packed := p.packed

	for k := range packed {
		packed[k] = complex(buf[2*k], buf[2*k+1])
	}

	p.inner.Forward(packed, packed)
	repackForward(p.spec, packed, p.weight)
	packHalfcomplex(buf, p.spec)
}

func (p *nativePlan) inverse() {
	buf := p.buf
	packed := p.packed

	unpackHalfcomplex(p.spec, buf)
	repackInverse(packed, p.spec, p.twiddle)
	p.inner.Inverse(packed, packed)

	for k, z := range packed {
		buf[2*k] = real(z)
		buf[2*k+1] = imag(z)
	}
}
