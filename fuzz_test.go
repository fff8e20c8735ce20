//go:build go1.18

package complexnumbers

import (
	"errors"
	"math"
	"testing"
)

// FuzzNew verifies construction never accepts a non-finite component and
// never alters a finite one.
func FuzzNew(f *testing.F) {
	f.Add(0.0, 0.0)
	f.Add(3.0, 5.0)
	f.Add(math.NaN(), 5.0)
	f.Add(5.0, math.Inf(-1))
	f.Add(math.MaxFloat64, math.SmallestNonzeroFloat64)

	f.Fuzz(func(t *testing.T, re, im float64) {
		c, err := New(re, im)

		finite := !math.IsNaN(re) && !math.IsNaN(im) && !math.IsInf(re, 0) && !math.IsInf(im, 0)
		if finite != (err == nil) {
			t.Fatalf("New(%v, %v): finite=%v, err=%v", re, im, finite, err)
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
			return
		}
		if c.Real() != re || c.Imaginary() != im {
			t.Errorf("Components changed: (%v, %v) → %v", re, im, pair(c))
		}
	})
}

// FuzzDivide verifies division either fails with ErrDivisionByZero or
// inverts multiplication when the result stays in a well-scaled range.
func FuzzDivide(f *testing.F) {
	f.Add(4.0, 2.0, 3.0, -1.0)
	f.Add(1.0, 1.0, 0.0, 0.0)
	f.Add(-7.5, 0.0, 0.0, 2.0)

	f.Fuzz(func(t *testing.T, a, b, c, d float64) {
		x, err := New(a, b)
		if err != nil {
			return
		}
		y, err := New(c, d)
		if err != nil {
			return
		}

		q, err := x.Divide(y)
		if y.ModulusSquared() == 0 {
			if !errors.Is(err, ErrDivisionByZero) {
				t.Fatalf("%v / %v: expected ErrDivisionByZero, got %v", pair(x), pair(y), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("%v / %v: unexpected error %v", pair(x), pair(y), err)
		}

		// Only check the inverse law where no intermediate overflows or underflows.
		inRange := func(v float64) bool {
			abs := math.Abs(v)
			return abs == 0 || (abs > 1e-100 && abs < 1e100)
		}
		if !inRange(a) || !inRange(b) || !inRange(c) || !inRange(d) {
			return
		}

		got := q.Multiply(y)
		tol := 1e-9 * (x.Modulus() + 1)
		if !got.ApproxEqual(x, tol) {
			t.Errorf("(%v / %v)·%v = %v", pair(x), pair(y), pair(y), pair(got))
		}
	})
}
