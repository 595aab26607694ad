package cheb3d

import "errors"

// Sentinel errors returned by spectral function operations.
var (
	// ErrBadDims is returned when a function is created with nx <= 1 or with a
	// non-positive ny or nz.
	ErrBadDims = errors.New("cheb3d: invalid dimensions")

	// ErrBadBounds is returned when an axis of size > 1 has min >= max.
	ErrBadBounds = errors.New("cheb3d: invalid domain bounds")

	// ErrAxisLength is returned when a transform is requested along an axis
	// whose length is even or smaller than 5.
	ErrAxisLength = errors.New("cheb3d: transform axis length must be odd and >= 5")

	// ErrValuesNotValid is returned when an operation needs the physical
	// values but only the coefficients are up to date.
	ErrValuesNotValid = errors.New("cheb3d: values are not up to date")

	// ErrCoefficientsNotValid is returned when an operation needs the
	// spectral coefficients but only the values are up to date.
	ErrCoefficientsNotValid = errors.New("cheb3d: coefficients are not up to date")

	// ErrDomainMismatch is returned when a binary operation receives functions
	// defined on different domains.
	ErrDomainMismatch = errors.New("cheb3d: domain mismatch")

	// ErrShapeMismatch is returned when a binary operation receives functions
	// with different grid sizes, or when a tensor does not fit a function.
	ErrShapeMismatch = errors.New("cheb3d: shape mismatch")

	// ErrOutOfDomain is returned when a function is evaluated outside its
	// bounds, or at a nonzero coordinate along a single-point axis.
	ErrOutOfDomain = errors.New("cheb3d: coordinate outside domain")

	// ErrOutOfRange is returned when an interpolation source grid does not
	// cover the destination grid.
	ErrOutOfRange = errors.New("cheb3d: source grid does not cover destination")

	// ErrNotMonotonic is returned when an interpolation source grid is not
	// strictly increasing.
	ErrNotMonotonic = errors.New("cheb3d: source grid is not increasing")

	// ErrCacheFull is returned when a plan or sine-table registry has reached
	// its capacity.
	ErrCacheFull = errors.New("cheb3d: plan cache capacity exceeded")

	// ErrInvalidAxis is returned when an axis other than X, Y or Z is given.
	ErrInvalidAxis = errors.New("cheb3d: invalid axis")

	// ErrNilFunction is returned when a nil *Function is passed as an operand.
	ErrNilFunction = errors.New("cheb3d: nil function")
)
