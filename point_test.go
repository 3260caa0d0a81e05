package intbez

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p.Add(q)
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	if !(Point{}).IsOrigin() {
		t.Errorf("Expected zero point to be origin")
	}
	assert.Equal(t, "(3,2)", p.String())
	x, y := q.XY()
	assert.Equal(t, -3, x)
	assert.Equal(t, -2, y)
}

func TestPointArithmetic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(7, -4), P(2, 5)
	assert.Equal(t, P(9, 1), p.Add(q))
	assert.Equal(t, P(5, -9), p.Sub(q))
	assert.Equal(t, P(-7, 4), p.Neg())
	assert.Equal(t, P(21, -12), p.Mul(3))
	assert.Equal(t, P(3, -2), p.Shr(1))
	assert.Equal(t, P(-4, 2), P(-7, 4).Shr(1), "shift must be arithmetic")
	assert.True(t, p.Equal(P(7, -4)))
	assert.False(t, p.Equal(q))
}

func TestOperandsUnchanged(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(10, -20), P(3, 4)
	_ = p.Add(q)
	_ = p.Sub(q)
	_ = p.Mul(5)
	_ = p.Shr(2)
	_ = p.Lerp(q, 511)
	_, _ = p.MulF(1.5)
	_, _ = p.DivF(3)
	assert.Equal(t, P(10, -20), p, "receiver has been modified")
	assert.Equal(t, P(3, 4), q, "argument has been modified")
}

func TestMulFTruncatesTowardZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := P(3, -3).MulF(2.5)
	require.NoError(t, err)
	assert.Equal(t, P(7, -7), r)
	r, err = P(1023, 0).MulF(Fraction(511))
	require.NoError(t, err)
	assert.Equal(t, P(511, 0), r)
}

func TestMulFNonFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, f := range []float32{math32.NaN(), math32.Inf(1), math32.Inf(-1)} {
		_, err := P(1, 1).MulF(f)
		assert.True(t, errors.Is(err, ErrNonFinite), "expected ErrNonFinite for %g", f)
	}
}

func TestDivF(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := P(7, -7).DivF(2)
	require.NoError(t, err)
	assert.Equal(t, P(3, -3), r)
	r, err = P(10, 5).DivF(0.5)
	require.NoError(t, err)
	assert.Equal(t, P(20, 10), r)
	r, err = P(10, -5).DivF(math32.Inf(1))
	require.NoError(t, err)
	assert.True(t, r.IsOrigin())
}

func TestDivFByZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := P(4, 2).DivF(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	_, err = P(4, 2).DivF(math32.NaN())
	assert.True(t, errors.Is(err, ErrNonFinite))
}

func TestFraction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 1023, MaxT)
	assert.Equal(t, float32(0), Fraction(0))
	assert.Equal(t, float32(1), Fraction(MaxT))
	assert.Equal(t, float32(2), Fraction(2*MaxT))
	assert.InDelta(t, 0.5, Fraction(511), 1e-3)
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := P(-100, 50), P(100, -50)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, MaxT))
	assert.Equal(t, P(-1, 1), a.Lerp(b, 511))
	assert.Equal(t, P(-512, 512), Origin.Lerp(P(-1023, 1023), 512))
	for _, tt := range []int{0, 1, 100, 511, 512, 1000, MaxT} {
		assert.Equal(t, a, a.Lerp(a, tt))
	}
}
