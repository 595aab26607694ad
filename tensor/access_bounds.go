// This file must be kept in sync with access_no_bounds.go.

//go:build bounds

package tensor

import "fmt"

func (t *Dense) check(i, j, k int) {
	d := t.dims
	if i < 0 || i >= d.NX || j < 0 || j >= d.NY || k < 0 || k >= d.NZ {
		panic(fmt.Sprintf("tensor: index (%d, %d, %d) out of bounds %v", i, j, k, d))
	}
}

// At returns element (i, j, k).
func (t *Dense) At(i, j, k int) float64 {
	t.check(i, j, k)
	return t.data[t.Index(i, j, k)]
}

// Set assigns v to element (i, j, k).
func (t *Dense) Set(i, j, k int, v float64) {
	t.check(i, j, k)
	t.data[t.Index(i, j, k)] = v
}

// AddAt adds v to element (i, j, k).
func (t *Dense) AddAt(i, j, k int, v float64) {
	t.check(i, j, k)
	t.data[t.Index(i, j, k)] += v
}
