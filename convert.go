package complexnumbers

import "golang.org/x/exp/constraints"

// Of creates re + im·i from any integer or floating-point type.
// The type parameter rules out non-numeric arguments at compile time;
// NaN and ±Inf are still rejected at run time with ErrInvalidArgument.
func Of[T constraints.Integer | constraints.Float](re, im T) (Complex, error) {
	return New(float64(re), float64(im))
}

// FromComplex128 converts a builtin complex128.
// Returns an error wrapping ErrInvalidArgument if either part is not finite.
func FromComplex128(z complex128) (Complex, error) {
	return New(real(z), imag(z))
}

// Complex128 returns c as a builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}
