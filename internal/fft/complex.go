package fft

import "math"

// complexPlan computes unnormalized complex DFTs of a fixed size using a
// recursive decimation-in-time decomposition over the radices of n.
type complexPlan struct {
	n       int
	factors []int
	twiddle []complex128 // W_n^k = exp(-2*pi*i*k/n), k in [0, n)
	scratch []complex128 // one butterfly column, len = largest radix
	work    []complex128 // copy of the input, len = n
}

func newComplexPlan(n int) *complexPlan {
	factors := factorize(n)

	twiddle := make([]complex128, n)
	for k := range n {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &complexPlan{
		n:       n,
		factors: factors,
		twiddle: twiddle,
		scratch: make([]complex128, maxFactor(factors)),
		work:    make([]complex128, n),
	}
}

// Forward computes dst = DFT(src). dst and src may alias.
func (p *complexPlan) Forward(dst, src []complex128) {
	p.transform(dst, src, false)
}

// Inverse computes the unnormalized inverse DFT. dst and src may alias.
func (p *complexPlan) Inverse(dst, src []complex128) {
	p.transform(dst, src, true)
}

func (p *complexPlan) transform(dst, src []complex128, inverse bool) {
	if p.n == 1 {
		dst[0] = src[0]
		return
	}

	copy(p.work, src[:p.n])
	p.recurse(dst[:p.n], p.work, 1, p.factors, inverse)
}

// recurse writes into out the DFT of the len(out) samples in[0], in[stride],
// in[2*stride], ... The stride at each level equals p.n/len(out).
func (p *complexPlan) recurse(out, in []complex128, stride int, factors []int, inverse bool) {
	radix := factors[0]
	m := len(out) / radix

	if m == 1 {
		for q := range radix {
			out[q] = in[q*stride]
		}
	} else {
		for q := range radix {
			p.recurse(out[q*m:(q+1)*m], in[q*stride:], stride*radix, factors[1:], inverse)
		}
	}

	p.butterfly(out, radix, m, stride, inverse)
}

// butterfly combines radix sub-transforms of length m stored back to back in
// out into one transform of length radix*m.
func (p *complexPlan) butterfly(out []complex128, radix, m, stride int, inverse bool) {
	col := p.scratch[:radix]
	rootStep := m * stride // W_radix = W_n^(n/radix)

	for k := range m {
		for q := range radix {
			col[q] = out[q*m+k] * p.root(q*k*stride, inverse)
		}

		for s := range radix {
			acc := col[0]
			for q := 1; q < radix; q++ {
				acc += col[q] * p.root(q*s*rootStep, inverse)
			}

			out[s*m+k] = acc
		}
	}
}

func (p *complexPlan) root(k int, inverse bool) complex128 {
	w := p.twiddle[k%p.n]
	if inverse {
		return complex(real(w), -imag(w))
	}

	return w
}
