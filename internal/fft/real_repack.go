package fft

import "math"

// realWeights returns U[k] = 0.5*(1+sin(theta)) + 0.5i*cos(theta) with
// theta = 2*pi*k/n, for k in [0, n/2].
func realWeights(n int) []complex128 {
	half := n / 2

	weight := make([]complex128, half+1)
	for k := range weight {
		theta := 2 * math.Pi * float64(k) / float64(n)
		weight[k] = complex(0.5*(1+math.Sin(theta)), 0.5*math.Cos(theta))
	}

	return weight
}

// repackForward turns the half-size DFT of the packed sequence
// z[k] = x[2k] + i*x[2k+1] into the n/2+1 bins of the real DFT of x.
// dst has length n/2+1, src and weight have length n/2 and n/2+1.
func repackForward(dst, src, weight []complex128) {
	half := len(src)

	y0r := real(src[0])
	y0i := imag(src[0])
	dst[0] = complex(y0r+y0i, 0)
	dst[half] = complex(y0r-y0i, 0)

	// X[k] = A[k] - U[k] * (A[k] - conj(A[half-k]))
	for k := 1; k < half; k++ {
		a := src[k]
		bSrc := src[half-k]
		b := complex(real(bSrc), -imag(bSrc))
		dst[k] = a - weight[k]*(a-b)
	}
}

// repackInverse rebuilds the packed half-size spectrum from the n/2+1 bins of
// a real DFT. The result is scaled by 2 so that an unnormalized half-size
// inverse DFT yields n*x.
//
// With E = (X[k] + conj(X[half-k]))/2 and O = (X[k] - conj(X[half-k]))/(2*W^k),
// dst[k] = 2*(E + i*O), where W = exp(-2*pi*i/n). twiddle holds conj(W^k).
func repackInverse(dst, src, twiddle []complex128) {
	half := len(dst)

	for k := range half {
		xk := src[k]
		xm := src[half-k]
		xmc := complex(real(xm), -imag(xm))

		even := xk + xmc
		odd := (xk - xmc) * twiddle[k]
		dst[k] = even + complex(-imag(odd), real(odd))
	}
}

// inverseTwiddles returns conj(W^k) = exp(2*pi*i*k/n) for k in [0, n/2).
func inverseTwiddles(n int) []complex128 {
	half := n / 2

	tw := make([]complex128, half)
	for k := range tw {
		theta := 2 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return tw
}
