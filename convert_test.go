package complexnumbers

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	c, err := Of(2, 3)
	require.NoError(t, err)
	assert.Equal(t, MustNew(2, 3), c)

	c, err = Of[int8](-4, 7)
	require.NoError(t, err)
	assert.Equal(t, MustNew(-4, 7), c)

	c, err = Of[float32](0.5, -0.25)
	require.NoError(t, err)
	assert.Equal(t, MustNew(0.5, -0.25), c)

	_, err = Of(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Of(float32(math.Inf(1)), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromComplex128(t *testing.T) {
	c, err := FromComplex128(3 - 4i)
	require.NoError(t, err)
	assert.Equal(t, MustNew(3, -4), c)
	assert.Equal(t, 3-4i, c.Complex128())

	_, err = FromComplex128(cmplx.NaN())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromComplex128(cmplx.Inf())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestBuiltinAgreement compares results against Go's complex128 arithmetic.
func TestBuiltinAgreement(t *testing.T) {
	samples := sampleSet(20, 7)

	for _, a := range samples {
		za := a.Complex128()

		assert.InDelta(t, cmplx.Abs(za), a.Modulus(), 1e-9*(a.Modulus()+1))
		assert.Equal(t, cmplx.Conj(za), a.Conjugate().Complex128())

		for _, b := range nonZero(samples) {
			zb := b.Complex128()

			p := a.Multiply(b)
			assert.True(t, p.ApproxEqual(mustFrom(t, za*zb), 1e-9*(cmplx.Abs(za*zb)+1)),
				"%v · %v = %v, builtin %v", pair(a), pair(b), pair(p), za*zb)

			q, err := a.Divide(b)
			require.NoError(t, err)
			assert.True(t, q.ApproxEqual(mustFrom(t, za/zb), 1e-9*(cmplx.Abs(za/zb)+1)),
				"%v / %v = %v, builtin %v", pair(a), pair(b), pair(q), za/zb)
		}
	}

	t.Logf("✓ Agrees with complex128 over %d samples", len(samples))
}

func TestRoundTrip(t *testing.T) {
	for _, a := range sampleSet(10, 3) {
		got, err := FromComplex128(a.Complex128())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func mustFrom(t *testing.T, z complex128) Complex {
	t.Helper()
	c, err := FromComplex128(z)
	require.NoError(t, err)
	return c
}
