package cheb3d

import (
	"fmt"

	"github.com/cwbudde/cheb3d/internal/fft"
)

// Backend selects the real FFT implementation used by a Cache.
// The canonical definition is in internal/fft.
type Backend = fft.Backend

// Available backends.
const (
	BackendNative = fft.Native
	BackendGonum  = fft.Gonum
	BackendGoDSP  = fft.GoDSP
)

// Backends lists every available backend.
func Backends() []Backend {
	return append([]Backend(nil), fft.Backends...)
}

// ParseBackend maps "native", "gonum" or "godsp" to a Backend.
func ParseBackend(name string) (Backend, error) {
	return fft.ParseBackend(name)
}

// Features reports the CPU features of the running process.
type Features = fft.Features

// DetectFeatures returns the CPU features of the running process.
func DetectFeatures() Features {
	return fft.DetectFeatures()
}

// Axis names one of the three grid directions.
type Axis int

// Grid axes, in storage order (Z varies fastest).
const (
	X Axis = iota
	Y
	Z
)

// Axes lists X, Y and Z in transform order.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Interval is a closed range [Min, Max] along one axis.
type Interval struct {
	Min, Max float64
}

// Span returns Max-Min.
func (iv Interval) Span() float64 { return iv.Max - iv.Min }

// Contains reports whether x lies in [Min, Max].
func (iv Interval) Contains(x float64) bool { return x >= iv.Min && x <= iv.Max }

// Bounds holds the domain of a function.
type Bounds [3]Interval

// UnitBounds is [-1, 1] along every axis.
var UnitBounds = Bounds{{-1, 1}, {-1, 1}, {-1, 1}}
