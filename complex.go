package complexnumbers

import (
	"fmt"
	"log/slog"
	"math"
)

// Complex is an immutable complex number re + im·i.
//
// Every method has a value receiver and returns a new Complex, so a value
// can be shared between goroutines without synchronization. The zero value
// is 0+0i.
type Complex struct {
	re float64
	im float64
}

// New creates re + im·i.
// Returns an error wrapping ErrInvalidArgument if either component is NaN or ±Inf.
func New(re, im float64) (Complex, error) {
	if err := checkFinite("real", re); err != nil {
		return Complex{}, err
	}
	if err := checkFinite("imaginary", im); err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// MustNew is like New but panics on error.
// Use for literals that are known to be finite.
func MustNew(re, im float64) Complex {
	c, err := New(re, im)
	if err != nil {
		panic(fmt.Sprintf("complexnumbers: %v", err))
	}
	return c
}

func checkFinite(component string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s component must be finite, got %v", ErrInvalidArgument, component, v)
	}
	return nil
}

// Zero returns 0+0i.
func Zero() Complex { return Complex{} }

// One returns 1+0i.
func One() Complex { return Complex{re: 1} }

// I returns the imaginary unit 0+1i.
func I() Complex { return Complex{im: 1} }

// Real returns the real component.
func (c Complex) Real() float64 { return c.re }

// Imaginary returns the imaginary component.
func (c Complex) Imaginary() float64 { return c.im }

// Scale multiplies both components by the real scalar k.
func (c Complex) Scale(k float64) Complex {
	return Complex{re: c.re * k, im: c.im * k}
}

// Negate returns -c.
func (c Complex) Negate() Complex {
	return c.Scale(-1)
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{re: c.re + o.re, im: c.im + o.im}
}

// Subtract returns c - o, computed as c + (-o).
func (c Complex) Subtract(o Complex) Complex {
	return c.Add(o.Negate())
}

// Multiply returns the complex product:
//
//	(a+bi)(c+di) = (ac - bd) + (cb + ad)i
func (c Complex) Multiply(o Complex) Complex {
	// Explicit conversions round each product, so no FMA is fused and
	// a·b == b·a holds bit-for-bit.
	return Complex{
		re: float64(c.re*o.re) - float64(c.im*o.im),
		im: float64(o.re*c.im) + float64(c.re*o.im),
	}
}

// Divide returns c / o:
//
//	(a+bi)/(c+di) = ((ac + bd) + (bc - ad)i) / (c² + d²)
//
// Returns an error wrapping ErrDivisionByZero when o is 0+0i, or when
// c² + d² underflows to zero. When c² + d² overflows to +Inf the result
// degrades per IEEE-754 (zero or NaN components) without an error.
func (c Complex) Divide(o Complex) (Complex, error) {
	d := o.ModulusSquared()
	if d == 0 {
		return Complex{}, fmt.Errorf("%w: divisor (%v, %v) has zero modulus", ErrDivisionByZero, o.re, o.im)
	}
	return Complex{
		re: (float64(c.re*o.re) + float64(c.im*o.im)) / d,
		im: (float64(c.im*o.re) - float64(c.re*o.im)) / d,
	}, nil
}

// Conjugate returns a - bi.
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// ModulusSquared returns a² + b². Always ≥ 0.
func (c Complex) ModulusSquared() float64 {
	return float64(c.re*c.re) + float64(c.im*c.im)
}

// Modulus returns the Euclidean norm √(a² + b²).
// It overflows to +Inf when a² + b² does, even for finite components.
func (c Complex) Modulus() float64 {
	return math.Sqrt(c.ModulusSquared())
}

// Argument returns the angle to the positive real axis in radians, in (-π, π].
// Argument of 0+0i is 0.
func (c Complex) Argument() float64 {
	// Adding +0 folds -0 into +0, so values that are Equal share one
	// argument and (-1, -0) maps to π rather than -π.
	return math.Atan2(c.im+0, c.re+0)
}

// Normalize scales c to unit modulus, keeping its direction.
// Returns an error wrapping ErrDivisionByZero for 0+0i, which has no direction.
//
// The modulus is taken with math.Hypot, so every finite non-zero value
// normalizes, including those whose a² + b² would overflow or underflow.
func (c Complex) Normalize() (Complex, error) {
	mod := math.Hypot(c.re, c.im)
	if mod == 0 {
		return Complex{}, fmt.Errorf("%w: cannot normalize a number with zero modulus", ErrDivisionByZero)
	}
	return Complex{re: c.re / mod, im: c.im / mod}, nil
}

// Equal reports whether both components are identical.
func (c Complex) Equal(o Complex) bool {
	return c.re == o.re && c.im == o.im
}

// ApproxEqual reports whether each component of c is within tol of o's.
func (c Complex) ApproxEqual(o Complex, tol float64) bool {
	return math.Abs(c.re-o.re) <= tol && math.Abs(c.im-o.im) <= tol
}

// LogValue implements slog.LogValuer.
func (c Complex) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("real", c.re),
		slog.Float64("imaginary", c.im),
	)
}
