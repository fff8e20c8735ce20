// Package complexnumbers provides an immutable complex-number value type.
//
// # Overview
//
// Complex wraps two finite float64 components, real and imaginary, and
// exposes a closed set of arithmetic and polar-form queries. Every method
// has a value receiver and returns a new Complex; operands are never
// modified, so a.Subtract(a) and a.Divide(a) are safe and values can be
// shared freely across goroutines.
//
// # Quick Start
//
//	a := complexnumbers.MustNew(2, 3)
//	b := complexnumbers.MustNew(4, 5)
//
//	p := a.Multiply(b) // (-7, 22)
//	s := a.Add(b)      // (6, 8)
//
//	q, err := a.Divide(b)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(p.Real(), p.Imaginary(), s.Modulus(), q.Argument())
//
// # Construction
//
// New rejects NaN and ±Inf with an error wrapping ErrInvalidArgument:
//
//	_, err := complexnumbers.New(math.NaN(), 5)
//	errors.Is(err, complexnumbers.ErrInvalidArgument) // true
//
// Of accepts any integer or float type, FromComplex128 converts Go's builtin
// complex128. Zero, One and I return the usual constants.
//
// # Operations
//
// For this = a+bi and other = c+di:
//
//	Scale(k)        (a·k) + (b·k)i
//	Negate()        Scale(-1)
//	Add(o)          (a+c) + (b+d)i
//	Subtract(o)     Add(o.Negate())
//	Multiply(o)     (ac − bd) + (cb + ad)i
//	Divide(o)       ((ac+bd) + (bc−ad)i) / (c² + d²)
//	Conjugate()     a − bi
//	ModulusSquared  a² + b²
//	Modulus         √(a² + b²)
//	Argument        atan2(b, a), in (−π, π]; −0 is treated as +0
//	Normalize()     c / |c|, with |c| from math.Hypot
//
// Divide and Normalize return an error wrapping ErrDivisionByZero instead of
// producing NaN or Inf components when the divisor (or the receiver) is 0+0i.
//
// Times, Plus, Minus, Over, DividedBy, Phase, Abs and AbsSquared are aliases.
//
// # Laws
//
// The arithmetic satisfies, for all samples a, b:
//   - a + b = b + a and a·b = b·a (exactly, component-wise)
//   - a − a = 0
//   - a / a = 1 for a ≠ 0
//   - conj(a)·a = |a|² + 0i
//   - |normalize(a)| = 1 for a ≠ 0
//   - (a / b)·b ≈ a for b ≠ 0
//   - a == b implies arg(a) == arg(b), including signed zeros
//
// # Testing
//
// Use the law assertions to check the properties above on your own samples:
//
//	func TestMyValues(t *testing.T) {
//	    samples := []complexnumbers.Complex{
//	        complexnumbers.MustNew(2, 3),
//	        complexnumbers.MustNew(-1.5, 0.25),
//	    }
//	    complexnumbers.AssertLaws(t, samples)
//	}
//
// # See Also
//
//   - examples/phasor - runnable walkthrough with structured logging
package complexnumbers
