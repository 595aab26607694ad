// Package tensor implements a dense 3D array of float64 values in row-major
// order (last axis fastest), with elementwise arithmetic and a plain text
// file format.
package tensor

import (
	"fmt"
	"math"
)

// Dims holds the extents of a 3D tensor.
type Dims struct {
	NX, NY, NZ int
}

// Len returns NX*NY*NZ.
func (d Dims) Len() int { return d.NX * d.NY * d.NZ }

func (d Dims) String() string { return fmt.Sprintf("%dx%dx%d", d.NX, d.NY, d.NZ) }

// valid reports whether every extent is positive and the element count
// fits in an int.
func (d Dims) valid() bool {
	if d.NX <= 0 || d.NY <= 0 || d.NZ <= 0 {
		return false
	}

	return d.NX <= math.MaxInt/d.NY && d.NX*d.NY <= math.MaxInt/d.NZ
}

// Dense is a 3D array of float64. Element (i, j, k) lives at offset
// (i*NY+j)*NZ+k of the backing slice, whose length always equals the
// product of the dimensions.
type Dense struct {
	dims Dims
	data []float64
}

// New returns a zero-filled tensor of the given dimensions.
func New(nx, ny, nz int) (*Dense, error) {
	d := Dims{nx, ny, nz}
	if !d.valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, d)
	}

	return &Dense{dims: d, data: make([]float64, d.Len())}, nil
}

// FromSlice returns a tensor holding a copy of data, which must contain
// exactly nx*ny*nz values in row-major order.
func FromSlice(nx, ny, nz int, data []float64) (*Dense, error) {
	t, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}

	if len(data) != t.dims.Len() {
		return nil, fmt.Errorf("%w: %d values for %v", ErrBadShape, len(data), t.dims)
	}

	copy(t.data, data)

	return t, nil
}

// Dims returns the tensor dimensions.
func (t *Dense) Dims() Dims { return t.dims }

// Len returns the number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Data returns the backing slice. Writes through it are visible in t.
func (t *Dense) Data() []float64 { return t.data }

// Index returns the flat offset of element (i, j, k).
func (t *Dense) Index(i, j, k int) int {
	return (i*t.dims.NY+j)*t.dims.NZ + k
}

// Clone returns a deep copy of t.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Dense{dims: t.dims, data: data}
}

// CopyFrom copies the contents of src into t, resizing t if needed.
func (t *Dense) CopyFrom(src *Dense) {
	if t.dims != src.dims {
		t.dims = src.dims
		t.data = make([]float64, len(src.data))
	}

	copy(t.data, src.data)
}

// Resize changes the dimensions of t. The storage is reallocated and zeroed
// only when the dimensions differ from the current ones.
func (t *Dense) Resize(nx, ny, nz int) error {
	d := Dims{nx, ny, nz}
	if !d.valid() {
		return fmt.Errorf("%w: %v", ErrBadShape, d)
	}

	if d == t.dims {
		return nil
	}

	t.dims = d
	t.data = make([]float64, d.Len())

	return nil
}

// Fill sets every element to v.
func (t *Dense) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Dense) bool {
	return a != nil && b != nil && a.dims == b.dims
}

func checkShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilTensor
	}

	if a.dims != b.dims {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.dims, b.dims)
	}

	return nil
}
