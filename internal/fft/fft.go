// Package fft provides the real-to-halfcomplex transforms consumed by the
// Chebyshev engine.
//
// A RealPlan is bound to a fixed buffer at construction time and transforms
// it in place on every Execute call. The halfcomplex layout follows FFTW:
//
//	[r0, r1, ..., r(n/2), i(n/2-1), ..., i1]
//
// where rk + i*ik is the k-th DFT bin computed with kernel exp(-2*pi*i*j*k/n).
// Neither direction is normalized, so Inverse(Forward(x)) == n*x.
package fft

import (
	"fmt"
	"strings"
)

// Direction selects the forward or inverse transform.
type Direction int

const (
	// Forward maps n real samples to their halfcomplex spectrum.
	Forward Direction = iota
	// Inverse maps a halfcomplex spectrum back to n real samples.
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}

	return "forward"
}

// RealPlan is an executable transform bound to a buffer of length Len().
type RealPlan interface {
	// Len returns the number of real samples in the bound buffer.
	Len() int
	// Execute transforms the bound buffer in place.
	Execute()
}

// Backend identifies the implementation behind a RealPlan.
type Backend int

const (
	// Native is the built-in mixed-radix implementation.
	Native Backend = iota
	// Gonum delegates to gonum.org/v1/gonum/dsp/fourier.
	Gonum
	// GoDSP delegates to github.com/mjibson/go-dsp/fft.
	GoDSP
)

// Backends lists every available backend.
var Backends = []Backend{Native, Gonum, GoDSP}

func (b Backend) String() string {
	switch b {
	case Native:
		return "native"
	case Gonum:
		return "gonum"
	case GoDSP:
		return "godsp"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name (case insensitive) to a Backend.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}

	return Native, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// NewRealPlan creates a plan of the given backend and direction bound to buf.
// len(buf) must be even and >= 2.
func NewRealPlan(backend Backend, dir Direction, buf []float64) (RealPlan, error) {
	n := len(buf)
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	switch backend {
	case Native:
		return newNativePlan(dir, buf), nil
	case Gonum:
		return newGonumPlan(dir, buf), nil
	case GoDSP:
		return newGoDSPPlan(dir, buf), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, backend)
	}
}

// packHalfcomplex writes the n/2+1 spectrum bins of spec into dst using the
// halfcomplex layout. The imaginary parts of the DC and Nyquist bins are dropped.
func packHalfcomplex(dst []float64, spec []complex128) {
	n := len(dst)
	half := n / 2

	for k := 0; k <= half; k++ {
		dst[k] = real(spec[k])
	}

	for k := 1; k < half; k++ {
		dst[n-k] = imag(spec[k])
	}
}

// unpackHalfcomplex is the inverse of packHalfcomplex.
func unpackHalfcomplex(dst []complex128, src []float64) {
	n := len(src)
	half := n / 2

	dst[0] = complex(src[0], 0)
	dst[half] = complex(src[half], 0)

	for k := 1; k < half; k++ {
		dst[k] = complex(src[k], src[n-k])
	}
}
