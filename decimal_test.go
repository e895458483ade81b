package precise_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-finance/precise"
	"github.com/port-finance/precise/errors"
)

func TestDecimalConstructors(t *testing.T) {
	assert.True(t, precise.Zero().IsZero())
	assert.Equal(t, "1.000000000000000000", precise.One().String())
	assert.Equal(t, "42.000000000000000000", precise.FromUint64(42).String())
	assert.Equal(t, "0.500000000000000000", precise.FromPercent(50).String())
	assert.Equal(t, "1.000000000000000000", precise.FromPercent(100).String())

	assert.Equal(t, "0.002500000000000000", precise.FromBips(25).String())
}

func TestDecimalRounding(t *testing.T) {
	tests := []struct {
		name  string
		d     precise.Decimal
		round uint64
		ceil  uint64
		floor uint64
	}{
		{name: "half", d: precise.FromPercent(50), round: 1, ceil: 1, floor: 0},
		{name: "below half", d: precise.FromPercent(49), round: 0, ceil: 1, floor: 0},
		{name: "whole", d: precise.FromUint64(7), round: 7, ceil: 7, floor: 7},
		{name: "just above one", d: precise.FromPercent(101), round: 1, ceil: 2, floor: 1},
		{name: "zero", d: precise.Zero(), round: 0, ceil: 0, floor: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.d.RoundUint64()
			require.NoError(t, err)
			assert.Equal(t, tc.round, got)

			got, err = tc.d.CeilUint64()
			require.NoError(t, err)
			assert.Equal(t, tc.ceil, got)

			got, err = tc.d.FloorUint64()
			require.NoError(t, err)
			assert.Equal(t, tc.floor, got)
		})
	}
}

func TestDecimalArithmetic(t *testing.T) {
	three, four := precise.FromUint64(3), precise.FromUint64(4)

	sum, err := three.Add(four)
	require.NoError(t, err)
	assert.True(t, sum.Eq(precise.FromUint64(7)))

	diff, err := four.Sub(three)
	require.NoError(t, err)
	assert.True(t, diff.Eq(precise.One()))

	prod, err := three.Mul(four)
	require.NoError(t, err)
	assert.True(t, prod.Eq(precise.FromUint64(12)), "WAD scaling must survive mul")

	quot, err := prod.Div(four)
	require.NoError(t, err)
	assert.True(t, quot.Eq(three), "WAD scaling must survive div")

	scaled, err := three.MulUint64(4)
	require.NoError(t, err)
	assert.True(t, scaled.Eq(precise.FromUint64(12)))

	frac, err := precise.FromUint64(12).DivUint64(5)
	require.NoError(t, err)
	assert.Equal(t, "2.400000000000000000", frac.String())

	third, err := precise.One().Div(precise.FromUint64(3))
	require.NoError(t, err)
	assert.Equal(t, "0.333333333333333333", third.String())
}

func TestDecimalRateOps(t *testing.T) {
	tenPct := precise.RateFromPercent(10)

	got, err := precise.FromUint64(200).MulRate(tenPct)
	require.NoError(t, err)
	assert.True(t, got.Eq(precise.FromUint64(20)))

	got, err = precise.FromUint64(20).DivRate(tenPct)
	require.NoError(t, err)
	assert.True(t, got.Eq(precise.FromUint64(200)))
}

func TestDecimalErrors(t *testing.T) {
	huge := precise.DecimalFromScaled(precise.Scaled{Lo: ^uint64(0), Hi: ^uint64(0)})

	big, err := huge.MulUint64(^uint64(0))
	require.NoError(t, err)

	_, err = big.Add(big)
	assert.ErrorIs(t, err, errors.ErrAddOverflow)

	_, err = precise.Zero().Sub(precise.One())
	assert.ErrorIs(t, err, errors.ErrSubUnderflow)

	_, err = big.Mul(big)
	assert.ErrorIs(t, err, errors.ErrMulOverflow)

	_, err = precise.One().Div(precise.Zero())
	assert.ErrorIs(t, err, errors.ErrDividedByZero)

	_, err = precise.One().DivUint64(0)
	assert.ErrorIs(t, err, errors.ErrDividedByZero)

	_, err = big.RoundUint64()
	assert.ErrorIs(t, err, errors.ErrRoundUint64)

	_, err = big.Scaled()
	assert.ErrorIs(t, err, errors.ErrRoundUint128)

	var mathErr *errors.Math
	require.True(t, stderrors.As(err, &mathErr))
	assert.Equal(t, errors.CodeRoundUint128, mathErr.Code)
}

func TestDecimalScaledRoundTrip(t *testing.T) {
	d := precise.FromPercent(37)

	s, err := d.Scaled()
	require.NoError(t, err)
	assert.Equal(t, precise.ScaledFromUint64(37*precise.PercentScaler), s)
	assert.True(t, precise.DecimalFromScaled(s).Eq(d))
}

func TestDecimalCmp(t *testing.T) {
	assert.Equal(t, -1, precise.Zero().Cmp(precise.One()))
	assert.Equal(t, 0, precise.One().Cmp(precise.FromPercent(100)))
	assert.Equal(t, 1, precise.FromUint64(2).Cmp(precise.One()))
}
