package complexnumbers

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// LawConfig contains tolerances for the algebraic law assertions.
// Every assertion takes one so AssertLaws can call them uniformly; laws that
// compare exactly ignore it.
type LawConfig struct {
	// Maximum absolute difference per component for laws that
	// involve rounding (normalization, division inverse)
	Tolerance float64
}

// DefaultLawConfig returns tolerances suitable for moderate magnitudes.
func DefaultLawConfig() LawConfig {
	return LawConfig{
		Tolerance: 1e-9,
	}
}

// AssertAddCommutative verifies a + b == b + a for every pair of samples.
// Comparison is exact.
//
// Mathematical property:
//
//	a + b = b + a
func AssertAddCommutative(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	var failures []string
	for _, a := range samples {
		for _, b := range samples {
			ab, ba := a.Add(b), b.Add(a)
			if !ab.Equal(ba) {
				failures = append(failures, fmt.Sprintf(
					"  %v + %v = %v, reversed = %v", pair(a), pair(b), pair(ab), pair(ba)))
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Addition not commutative:\n%s", strings.Join(failures, "\n"))
	}

	t.Logf("✓ Add commutative over %d pairs", len(samples)*len(samples))
}

// AssertMultiplyCommutative verifies a·b == b·a for every pair of samples.
// Comparison is exact.
//
// Mathematical property:
//
//	a · b = b · a
func AssertMultiplyCommutative(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	var failures []string
	for _, a := range samples {
		for _, b := range samples {
			ab, ba := a.Multiply(b), b.Multiply(a)
			if !ab.Equal(ba) {
				failures = append(failures, fmt.Sprintf(
					"  %v · %v = %v, reversed = %v", pair(a), pair(b), pair(ab), pair(ba)))
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Multiplication not commutative:\n%s", strings.Join(failures, "\n"))
	}

	t.Logf("✓ Multiply commutative over %d pairs", len(samples)*len(samples))
}

// AssertSelfSubtraction verifies a - a == 0 (additive inverse).
// Comparison is exact.
func AssertSelfSubtraction(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	for _, a := range samples {
		if got := a.Subtract(a); !got.Equal(Zero()) {
			t.Errorf("%v - itself = %v, want (0, 0)", pair(a), pair(got))
		}
	}

	t.Logf("✓ Self-subtraction yields zero for %d samples", len(samples))
}

// AssertSelfDivision verifies a / a == 1 for every non-zero sample.
func AssertSelfDivision(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	checked := 0
	for _, a := range nonZero(samples) {
		got, err := a.Divide(a)
		if err != nil {
			t.Errorf("%v / itself failed: %v", pair(a), err)
			continue
		}
		if !got.ApproxEqual(One(), cfg.Tolerance) {
			t.Errorf("%v / itself = %v, want (1, 0)", pair(a), pair(got))
		}
		checked++
	}

	t.Logf("✓ Self-division yields one for %d samples (tolerance: %g)", checked, cfg.Tolerance)
}

// AssertConjugateProjection verifies conj(a)·a lands on the real axis at |a|².
// Comparison is exact.
//
// Mathematical property:
//
//	(a - bi)(a + bi) = a² + b²
func AssertConjugateProjection(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	for _, a := range samples {
		got := a.Conjugate().Multiply(a)
		if got.Imaginary() != 0 {
			t.Errorf("conj(%v)·%v has imaginary part %g, want 0", pair(a), pair(a), got.Imaginary())
		}
		if got.Real() != a.ModulusSquared() {
			t.Errorf("conj(%v)·%v has real part %g, want |a|² = %g",
				pair(a), pair(a), got.Real(), a.ModulusSquared())
		}
	}

	t.Logf("✓ Conjugate projects onto reals for %d samples", len(samples))
}

// AssertNormalized verifies |normalize(a)|² ≈ 1 for every non-zero sample,
// and that normalize(0) fails with ErrDivisionByZero.
func AssertNormalized(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	checked := 0
	for _, a := range nonZero(samples) {
		u, err := a.Normalize()
		if err != nil {
			t.Errorf("normalize(%v) failed: %v", pair(a), err)
			continue
		}
		if diff := u.ModulusSquared() - 1; diff > cfg.Tolerance || diff < -cfg.Tolerance {
			t.Errorf("|normalize(%v)|² = %.17g, want 1 (tolerance: %g)",
				pair(a), u.ModulusSquared(), cfg.Tolerance)
		}
		checked++
	}

	if _, err := Zero().Normalize(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("normalize(0) error = %v, want ErrDivisionByZero", err)
	}

	t.Logf("✓ Normalization yields unit modulus for %d samples", checked)
}

// AssertDivisionInverse verifies (a / b)·b ≈ a for every pair with b ≠ 0.
//
// The tolerance is scaled by |a| + 1 since rounding error grows with magnitude.
func AssertDivisionInverse(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	var failures []string
	checked := 0
	for _, a := range samples {
		for _, b := range nonZero(samples) {
			q, err := a.Divide(b)
			if err != nil {
				failures = append(failures, fmt.Sprintf("  %v / %v failed: %v", pair(a), pair(b), err))
				continue
			}
			got := q.Multiply(b)
			tol := cfg.Tolerance * (a.Modulus() + 1)
			if !got.ApproxEqual(a, tol) {
				failures = append(failures, fmt.Sprintf(
					"  (%v / %v)·%v = %v (tolerance: %g)", pair(a), pair(b), pair(b), pair(got), tol))
			}
			checked++
		}
	}

	if len(failures) > 0 {
		t.Errorf("Division does not invert multiplication:\n%s", strings.Join(failures, "\n"))
	}

	t.Logf("✓ Division inverts multiplication over %d pairs", checked)
}

// AssertImmutable verifies no operation changes its receiver or argument.
// Comparison is exact.
func AssertImmutable(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	for _, a := range samples {
		for _, b := range samples {
			a0, b0 := a, b

			_ = a.Scale(3)
			_ = a.Negate()
			_ = a.Add(b)
			_ = a.Subtract(b)
			_ = a.Multiply(b)
			_, _ = a.Divide(b)
			_ = a.Conjugate()
			_, _ = a.Normalize()

			if !a.Equal(a0) || !b.Equal(b0) {
				t.Fatalf("operands changed: a %v → %v, b %v → %v", pair(a0), pair(a), pair(b0), pair(b))
			}
		}
	}

	t.Logf("✓ Operands unchanged for %d pairs", len(samples)*len(samples))
}

// AssertArgumentWellDefined verifies that Equal values share one argument
// and that every argument lies in (-π, π]. Each sample is also checked in
// negated and conjugated form, which introduces zeros of both signs.
// Comparison is exact.
func AssertArgumentWellDefined(t *testing.T, samples []Complex, cfg LawConfig) {
	t.Helper()

	expanded := make([]Complex, 0, 4*len(samples))
	for _, s := range samples {
		expanded = append(expanded, s, s.Negate(), s.Conjugate(), s.Negate().Conjugate())
	}

	var failures []string
	for _, a := range expanded {
		if arg := a.Argument(); arg <= -math.Pi || arg > math.Pi {
			failures = append(failures, fmt.Sprintf("  arg%v = %.17g, outside (-π, π]", pair(a), arg))
		}
		for _, b := range expanded {
			if a.Equal(b) && a.Argument() != b.Argument() {
				failures = append(failures, fmt.Sprintf(
					"  %v == %v but arguments differ: %.17g vs %.17g",
					pair(a), pair(b), a.Argument(), b.Argument()))
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Argument not well defined:\n%s", strings.Join(failures, "\n"))
	}

	t.Logf("✓ Argument consistent over %d values", len(expanded))
}

// AssertLaws runs every law assertion with the default config.
func AssertLaws(t *testing.T, samples []Complex) {
	t.Helper()

	cfg := DefaultLawConfig()

	t.Run("AddCommutative", func(t *testing.T) {
		AssertAddCommutative(t, samples, cfg)
	})

	t.Run("MultiplyCommutative", func(t *testing.T) {
		AssertMultiplyCommutative(t, samples, cfg)
	})

	t.Run("SelfSubtraction", func(t *testing.T) {
		AssertSelfSubtraction(t, samples, cfg)
	})

	t.Run("SelfDivision", func(t *testing.T) {
		AssertSelfDivision(t, samples, cfg)
	})

	t.Run("ConjugateProjection", func(t *testing.T) {
		AssertConjugateProjection(t, samples, cfg)
	})

	t.Run("Normalized", func(t *testing.T) {
		AssertNormalized(t, samples, cfg)
	})

	t.Run("DivisionInverse", func(t *testing.T) {
		AssertDivisionInverse(t, samples, cfg)
	})

	t.Run("ArgumentWellDefined", func(t *testing.T) {
		AssertArgumentWellDefined(t, samples, cfg)
	})

	t.Run("Immutable", func(t *testing.T) {
		AssertImmutable(t, samples, cfg)
	})
}

// nonZero filters out 0+0i, which has no inverse and no direction.
func nonZero(samples []Complex) []Complex {
	out := make([]Complex, 0, len(samples))
	for _, s := range samples {
		if !s.Equal(Zero()) {
			out = append(out, s)
		}
	}
	return out
}

// pair renders c for failure messages only.
func pair(c Complex) string {
	return fmt.Sprintf("(%g, %g)", c.re, c.im)
}
