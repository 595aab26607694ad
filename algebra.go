package cheb3d

import (
	"fmt"
	"math"

	"github.com/cwbudde/cheb3d/tensor"
)

// The operators below pick the cheapest representation for each operation.
// Linear operations act on whichever representations are current, without
// transforming. Nonlinear ones need the samples: their operands are brought
// into the values representation and the result holds samples only.

func checkOperand(f *Function) error {
	if f == nil {
		return ErrNilFunction
	}

	return nil
}

func checkBinary(f, g *Function) error {
	if err := checkOperand(f); err != nil {
		return err
	}

	if err := checkOperand(g); err != nil {
		return err
	}

	if f.dims != g.dims {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, f.dims, g.dims)
	}

	if !f.SameDomain(g) {
		return fmt.Errorf("%w: %v vs %v", ErrDomainMismatch, f.bounds, g.bounds)
	}

	return nil
}

// Add returns f+g.
func Add(f, g *Function) (*Function, error) {
	return linearBinary(f, g, tensor.AddTo)
}

// Sub returns f-g.
func Sub(f, g *Function) (*Function, error) {
	return linearBinary(f, g, tensor.SubTo)
}

func linearBinary(f, g *Function, op func(dst, a, b *tensor.Dense) (*tensor.Dense, error)) (*Function, error) {
	if err := checkBinary(f, g); err != nil {
		return nil, err
	}

	// With no representation in common, bring g to f's.
	if !shareRepresentation(f.state, g.state) {
		if err := g.ensure(f.state); err != nil {
			return nil, err
		}
	}

	r := f.zeroLike()

	var state Representation

	if f.state.HasCoefficients() && g.state.HasCoefficients() {
		if _, err := op(r.coefs, f.coefs, g.coefs); err != nil {
			return nil, err
		}

		state = CoefficientsOnly
	}

	if f.state.HasValues() && g.state.HasValues() {
		if _, err := op(r.values, f.values, g.values); err != nil {
			return nil, err
		}

		if state == 0 {
			state = ValuesOnly
		} else {
			state = Both
		}
	}

	r.state = state

	return r, nil
}

func shareRepresentation(a, b Representation) bool {
	return (a.HasValues() && b.HasValues()) || (a.HasCoefficients() && b.HasCoefficients())
}

// linearUnary applies the affine map v -> scale*v on every current
// representation, then adds shift to the constant term.
func linearUnary(f *Function, scale, shift float64) (*Function, error) {
	if err := checkOperand(f); err != nil {
		return nil, err
	}

	r := f.Clone()

	if r.state.HasCoefficients() {
		r.coefs.Scale(scale)
		r.coefs.Data()[0] += shift
	}

	if r.state.HasValues() {
		r.values.Scale(scale)
		r.values.AddConst(shift)
	}

	return r, nil
}

// AddScalar returns f+a. Only the degree-(0,0,0) coefficient changes.
func AddScalar(f *Function, a float64) (*Function, error) {
	return linearUnary(f, 1, a)
}

// SubScalar returns f-a.
func SubScalar(f *Function, a float64) (*Function, error) {
	return linearUnary(f, 1, -a)
}

// ScalarSub returns a-f.
func ScalarSub(a float64, f *Function) (*Function, error) {
	return linearUnary(f, -1, a)
}

// Neg returns -f.
func Neg(f *Function) (*Function, error) {
	return linearUnary(f, -1, 0)
}

// Scale returns a*f.
func Scale(f *Function, a float64) (*Function, error) {
	return linearUnary(f, a, 0)
}

// DivScalar returns f/a.
func DivScalar(f *Function, a float64) (*Function, error) {
	return linearUnary(f, 1/a, 0)
}

// valuesBinary combines the samples of f and g pointwise.
func valuesBinary(f, g *Function, op tensor.BinaryOp) (*Function, error) {
	if err := checkBinary(f, g); err != nil {
		return nil, err
	}

	if err := f.ensure(ValuesOnly); err != nil {
		return nil, err
	}

	if err := g.ensure(ValuesOnly); err != nil {
		return nil, err
	}

	r := f.zeroLike()
	if _, err := tensor.Zip(r.values, f.values, g.values, op); err != nil {
		return nil, err
	}

	r.state = ValuesOnly

	return r, nil
}

// Mul returns the pointwise product f*g.
func Mul(f, g *Function) (*Function, error) {
	return valuesBinary(f, g, func(a, b float64) float64 { return a * b })
}

// Div returns the pointwise quotient f/g.
func Div(f, g *Function) (*Function, error) {
	return valuesBinary(f, g, func(a, b float64) float64 { return a / b })
}

// Apply returns op applied to every sample of f.
func Apply(f *Function, op tensor.UnaryOp) (*Function, error) {
	if err := checkOperand(f); err != nil {
		return nil, err
	}

	if err := f.ensure(ValuesOnly); err != nil {
		return nil, err
	}

	r := f.zeroLike()
	if _, err := tensor.Map(r.values, f.values, op); err != nil {
		return nil, err
	}

	r.state = ValuesOnly

	return r, nil
}

// ScalarDiv returns a/f.
func ScalarDiv(a float64, f *Function) (*Function, error) {
	return Apply(f, func(v float64) float64 { return a / v })
}

// Pow returns f raised to the power p.
func Pow(f *Function, p float64) (*Function, error) {
	return Apply(f, func(v float64) float64 { return math.Pow(v, p) })
}

// Sqrt returns the square root of f.
func Sqrt(f *Function) (*Function, error) { return Apply(f, math.Sqrt) }

// Exp returns e**f.
func Exp(f *Function) (*Function, error) { return Apply(f, math.Exp) }

// Log returns the natural logarithm of f.
func Log(f *Function) (*Function, error) { return Apply(f, math.Log) }

// Sin returns sin(f).
func Sin(f *Function) (*Function, error) { return Apply(f, math.Sin) }

// Cos returns cos(f).
func Cos(f *Function) (*Function, error) { return Apply(f, math.Cos) }

// Tan returns tan(f).
func Tan(f *Function) (*Function, error) { return Apply(f, math.Tan) }

// Atan returns atan(f).
func Atan(f *Function) (*Function, error) { return Apply(f, math.Atan) }

// Sinh returns sinh(f).
func Sinh(f *Function) (*Function, error) { return Apply(f, math.Sinh) }

// Cosh returns cosh(f).
func Cosh(f *Function) (*Function, error) { return Apply(f, math.Cosh) }

// Tanh returns tanh(f).
func Tanh(f *Function) (*Function, error) { return Apply(f, math.Tanh) }

// Abs returns |f|.
func Abs(f *Function) (*Function, error) { return Apply(f, math.Abs) }
