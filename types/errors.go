package types

import "errors"

// Failure kinds reported by the mixing pipeline. Call sites wrap these with
// context so use errors.Is to classify.
var (
	// Degenerate or zero-sum proportions, mismatched arities, malformed tables.
	ErrInvalidInput = errors.New("invalid input")

	// A reflectance curve or pigment does not line up with the spectral table.
	ErrShapeMismatch = errors.New("shape mismatch")

	// The illuminant/CMF normalization integral is zero.
	ErrDegenerateIlluminant = errors.New("degenerate illuminant")

	// Gamut sampling only supports 2, 3 or 4 pigments.
	ErrUnsupportedArity = errors.New("unsupported number of pigments")

	ErrUnknownPigment = errors.New("unknown pigment")
)
