package symcalc

import "errors"

var (
	// ErrInvalidArgument is returned when an operation that targets a variable
	// is given an expression that is not a Variable.
	ErrInvalidArgument = errors.New("symcalc: invalid argument kind")

	// ErrAmbiguousTarget is returned by the single-variable derivative when the
	// expression has no free variable or more than one.
	ErrAmbiguousTarget = errors.New("symcalc: ambiguous differentiation target")
)
