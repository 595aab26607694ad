package cheb3d

// Representation records which of a function's two tensors are up to date.
// At least one always is.
type Representation uint8

const (
	// ValuesOnly means the physical samples are current and the
	// coefficients are stale.
	ValuesOnly Representation = iota + 1
	// CoefficientsOnly means the coefficients are current and the samples
	// are stale.
	CoefficientsOnly
	// Both means samples and coefficients are current and consistent.
	Both
)

// HasValues reports whether the samples are current.
func (r Representation) HasValues() bool { return r == ValuesOnly || r == Both }

// HasCoefficients reports whether the coefficients are current.
func (r Representation) HasCoefficients() bool { return r == CoefficientsOnly || r == Both }

func (r Representation) String() string {
	switch r {
	case ValuesOnly:
		return "values"
	case CoefficientsOnly:
		return "coefficients"
	case Both:
		return "both"
	default:
		return "invalid"
	}
}
