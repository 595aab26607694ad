package tensor

import "gonum.org/v1/gonum/floats"

// UnaryOp is a scalar function applied elementwise by Map.
type UnaryOp func(float64) float64

// BinaryOp is a scalar function applied elementwise by Zip.
type BinaryOp func(a, b float64) float64

// prepare validates dst against the reference tensor and allocates it when
// nil. Existing destinations must already have the reference shape.
func prepare(dst, ref *Dense) (*Dense, error) {
	if dst == nil {
		return &Dense{dims: ref.dims, data: make([]float64, len(ref.data))}, nil
	}

	if err := checkShape(dst, ref); err != nil {
		return nil, err
	}

	return dst, nil
}

// Map stores op(src) into dst and returns dst. A nil dst is allocated.
// dst may be src.
func Map(dst, src *Dense, op UnaryOp) (*Dense, error) {
	if src == nil {
		return nil, ErrNilTensor
	}

	dst, err := prepare(dst, src)
	if err != nil {
		return nil, err
	}

	for i, v := range src.data {
		dst.data[i] = op(v)
	}

	return dst, nil
}

// Zip stores op(a, b) into dst and returns dst. a and b must have the same
// shape. A nil dst is allocated; dst may alias a or b.
func Zip(dst, a, b *Dense, op BinaryOp) (*Dense, error) {
	if err := checkShape(a, b); err != nil {
		return nil, err
	}

	dst, err := prepare(dst, a)
	if err != nil {
		return nil, err
	}

	for i, v := range a.data {
		dst.data[i] = op(v, b.data[i])
	}

	return dst, nil
}

// AddTo stores a+b into dst and returns it. A nil dst is allocated.
func AddTo(dst, a, b *Dense) (*Dense, error) {
	return vectorOp(dst, a, b, floats.AddTo)
}

// SubTo stores a-b into dst and returns it. A nil dst is allocated.
func SubTo(dst, a, b *Dense) (*Dense, error) {
	return vectorOp(dst, a, b, floats.SubTo)
}

// MulTo stores the elementwise product a*b into dst and returns it.
func MulTo(dst, a, b *Dense) (*Dense, error) {
	return vectorOp(dst, a, b, floats.MulTo)
}

// DivTo stores the elementwise quotient a/b into dst and returns it.
func DivTo(dst, a, b *Dense) (*Dense, error) {
	return vectorOp(dst, a, b, floats.DivTo)
}

func vectorOp(dst, a, b *Dense, op func(dst, s, t []float64) []float64) (*Dense, error) {
	if err := checkShape(a, b); err != nil {
		return nil, err
	}

	dst, err := prepare(dst, a)
	if err != nil {
		return nil, err
	}

	op(dst.data, a.data, b.data)

	return dst, nil
}

// AddInPlace adds b to t elementwise.
func (t *Dense) AddInPlace(b *Dense) error {
	if err := checkShape(t, b); err != nil {
		return err
	}

	floats.Add(t.data, b.data)

	return nil
}

// SubInPlace subtracts b from t elementwise.
func (t *Dense) SubInPlace(b *Dense) error {
	if err := checkShape(t, b); err != nil {
		return err
	}

	floats.Sub(t.data, b.data)

	return nil
}

// Scale multiplies every element by c.
func (t *Dense) Scale(c float64) {
	floats.Scale(c, t.data)
}

// AddConst adds c to every element.
func (t *Dense) AddConst(c float64) {
	floats.AddConst(c, t.data)
}
