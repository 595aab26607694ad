// This file must be kept in sync with access_bounds.go.

//go:build !bounds

package tensor

// At returns element (i, j, k). Indices are not checked against the
// dimensions; build with -tags bounds to enable checking.
func (t *Dense) At(i, j, k int) float64 {
	return t.data[t.Index(i, j, k)]
}

// Set assigns v to element (i, j, k).
func (t *Dense) Set(i, j, k int, v float64) {
	t.data[t.Index(i, j, k)] = v
}

// AddAt adds v to element (i, j, k).
func (t *Dense) AddAt(i, j, k int, v float64) {
	t.data[t.Index(i, j, k)] += v
}
