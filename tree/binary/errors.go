package binary

import "errors"

var (
	// ErrInvalidArgument is returned when caller-supplied arguments violate
	// a precondition: a nil key to Insert, or nodes handed to Rotate that
	// are nil, foreign, or not a direct parent-child pair.
	// The tree is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation is returned when the tree's own links are found
	// inconsistent. It means the tree was corrupted earlier, not that the
	// arguments were bad. The tree is left unchanged.
	ErrInvariantViolation = errors.New("tree invariant violated")
)
