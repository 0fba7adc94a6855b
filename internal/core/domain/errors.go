package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrFormat indicates a mandatory structural line is absent or
	// fails to tokenize into the expected count or type of numbers.
	ErrFormat = errors.New("malformed photometric file")

	// ErrArity indicates declared angle/row counts disagree with the
	// actual content of the file.
	ErrArity = errors.New("angle count mismatch")

	// ErrPrecondition indicates a caller passed an invalid parameter
	// to a scaling operation (non-positive wattage, lumens, dimension
	// or multiplier). Scaling functions fail fast rather than clamp.
	ErrPrecondition = errors.New("invalid scaling parameter")

	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
