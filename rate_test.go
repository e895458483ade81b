package precise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-finance/precise"
	"github.com/port-finance/precise/errors"
)

func TestRateConstructors(t *testing.T) {
	assert.True(t, precise.ZeroRate().IsZero())
	assert.Equal(t, "1.000000000000000000", precise.OneRate().String())
	assert.Equal(t, "0.100000000000000000", precise.RateFromPercent(10).String())

	assert.Equal(t, "3.000000000000000000", precise.RateFromUint64(3).String())
	assert.Equal(t, "0.012500000000000000", precise.RateFromBips(125).String())
}

func TestRateDecimalRoundTrip(t *testing.T) {
	r := precise.RateFromPercent(37)

	d := precise.DecimalFromRate(r)
	back, err := precise.RateFromDecimal(d)
	require.NoError(t, err)
	assert.True(t, back.Eq(r))

	huge := precise.DecimalFromScaled(precise.Scaled{Lo: ^uint64(0), Hi: ^uint64(0)})
	big, err := huge.MulUint64(1000)
	require.NoError(t, err)
	_, err = precise.RateFromDecimal(big)
	assert.ErrorIs(t, err, errors.ErrRoundUint128)
}

func TestRateArithmetic(t *testing.T) {
	tenPct := precise.RateFromPercent(10)

	sum, err := precise.OneRate().Add(tenPct)
	require.NoError(t, err)
	assert.Equal(t, "1.100000000000000000", sum.String())

	diff, err := sum.Sub(tenPct)
	require.NoError(t, err)
	assert.True(t, diff.Eq(precise.OneRate()))

	prod, err := tenPct.Mul(tenPct)
	require.NoError(t, err)
	assert.True(t, prod.Eq(precise.RateFromPercent(1)), "0.1 * 0.1 = 0.01")

	quot, err := prod.Div(tenPct)
	require.NoError(t, err)
	assert.True(t, quot.Eq(tenPct))

	doubled, err := tenPct.MulUint64(2)
	require.NoError(t, err)
	assert.True(t, doubled.Eq(precise.RateFromPercent(20)))

	halved, err := doubled.DivUint64(2)
	require.NoError(t, err)
	assert.True(t, halved.Eq(tenPct))

	v, err := precise.RateFromPercent(150).RoundUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)
}

func TestRatePow(t *testing.T) {
	tenPct := precise.RateFromPercent(10)

	r, err := tenPct.Pow(0)
	require.NoError(t, err)
	assert.True(t, r.Eq(precise.OneRate()))

	r, err = tenPct.Pow(1)
	require.NoError(t, err)
	assert.True(t, r.Eq(tenPct))

	r, err = tenPct.Pow(2)
	require.NoError(t, err)
	assert.True(t, r.Eq(precise.RateFromPercent(1)))

	// compound 10% twice: 1.1^2 = 1.21
	growth, err := precise.OneRate().Add(tenPct)
	require.NoError(t, err)
	compounded, err := growth.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, "1.210000000000000000", compounded.String())

	// compounding at one stays at one for any exponent
	r, err = precise.OneRate().Pow(1 << 40)
	require.NoError(t, err)
	assert.True(t, r.Eq(precise.OneRate()))
}

func TestRateErrors(t *testing.T) {
	max := precise.RateFromScaled(precise.Scaled{Lo: ^uint64(0), Hi: ^uint64(0)})

	_, err := max.Add(precise.OneRate())
	assert.ErrorIs(t, err, errors.ErrAddOverflow)

	_, err = precise.ZeroRate().Sub(precise.OneRate())
	assert.ErrorIs(t, err, errors.ErrSubUnderflow)

	_, err = max.Mul(max)
	assert.ErrorIs(t, err, errors.ErrMulOverflow)

	_, err = precise.OneRate().Div(precise.ZeroRate())
	assert.ErrorIs(t, err, errors.ErrDividedByZero)

	_, err = precise.OneRate().DivUint64(0)
	assert.ErrorIs(t, err, errors.ErrDividedByZero)

	// adding HalfWAD to the max already carries
	_, err = max.RoundUint64()
	assert.ErrorIs(t, err, errors.ErrAddOverflow)

	wide := precise.RateFromScaled(precise.Scaled{Hi: 1 << 63})
	_, err = wide.RoundUint64()
	assert.ErrorIs(t, err, errors.ErrRoundUint64)

	_, err = max.Pow(2)
	assert.ErrorIs(t, err, errors.ErrMulOverflow)
}
