package complexnumbers

import "errors"

// Sentinel errors returned (wrapped) by constructors and arithmetic.
// Match them with errors.Is:
//   - ErrInvalidArgument: a component is NaN or ±Inf
//   - ErrDivisionByZero: divisor or normalization target is 0+0i
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
)
