package precise

import (
	"github.com/port-finance/precise/errors"
	"github.com/port-finance/precise/internal/u128"
)

// Rate is a WAD-scaled unsigned fixed-point value backed by 128 bits,
// used for interest and utilization rates where the extra headroom of
// Decimal is not needed. The zero value is 0.
type Rate struct {
	v u128.U128
}

// ZeroRate returns the rate 0.
func ZeroRate() Rate {
	return Rate{}
}

// OneRate returns the rate 1.
func OneRate() Rate {
	return Rate{v: wad128()}
}

// RateFromUint64 returns v as a rate. Any 64-bit value scaled by WAD
// fits 128 bits, so the conversion cannot fail.
func RateFromUint64(v uint64) Rate {
	p, _ := u128.FromUint64(v).Mul(wad128())
	return Rate{v: p}
}

// RateFromPercent returns p% as a rate.
func RateFromPercent(p uint8) Rate {
	return Rate{v: u128.FromUint64(uint64(p) * PercentScaler)}
}

// RateFromBips returns b basis points as a rate. The widening multiply
// cannot overflow 128 bits.
func RateFromBips(b uint64) Rate {
	p, _ := u128.FromUint64(b).Mul(u128.FromUint64(BipsScaler))
	return Rate{v: p}
}

// RateFromDecimal narrows a decimal to a rate. It fails when the scaled
// value does not fit in 128 bits.
func RateFromDecimal(d Decimal) (Rate, error) {
	s, err := d.Scaled()
	if err != nil {
		return Rate{}, errors.NewMath(errors.CodeRoundUint128, "rate from decimal")
	}
	return Rate{v: u128.FromWords(s.Lo, s.Hi)}, nil
}

// RateFromScaled returns the rate with the given raw WAD-scaled value.
func RateFromScaled(s Scaled) Rate {
	return Rate{v: u128.FromWords(s.Lo, s.Hi)}
}

// Scaled returns the raw WAD-scaled value. A rate always fits.
func (r Rate) Scaled() Scaled {
	lo, hi := r.v.Words()
	return Scaled{Lo: lo, Hi: hi}
}

// IsZero reports whether r is zero.
func (r Rate) IsZero() bool {
	return r.v.IsZero()
}

// Cmp returns -1, 0 or 1 depending on whether r is less than, equal to
// or greater than other.
func (r Rate) Cmp(other Rate) int {
	return r.v.Cmp(other.v)
}

// Eq reports whether r and other hold the same value.
func (r Rate) Eq(other Rate) bool {
	return r.v == other.v
}

// RoundUint64 rounds half-up to the nearest unsigned 64-bit integer.
func (r Rate) RoundUint64() (uint64, error) {
	sum, carry := r.v.Add(u128.FromUint64(HalfWAD))
	if carry != 0 {
		return 0, errors.NewMath(errors.CodeAddOverflow, "rate round")
	}
	q, _ := sum.QuoRem64(WAD)
	v, ok := q.Uint64()
	if !ok {
		return 0, errors.NewMath(errors.CodeRoundUint64, "rate round")
	}
	return v, nil
}

// Add returns r+other.
func (r Rate) Add(other Rate) (Rate, error) {
	sum, carry := r.v.Add(other.v)
	if carry != 0 {
		return Rate{}, errors.NewMath(errors.CodeAddOverflow, "rate add")
	}
	return Rate{v: sum}, nil
}

// Sub returns r-other.
func (r Rate) Sub(other Rate) (Rate, error) {
	diff, borrow := r.v.Sub(other.v)
	if borrow != 0 {
		return Rate{}, errors.NewMath(errors.CodeSubUnderflow, "rate sub")
	}
	return Rate{v: diff}, nil
}

// MulUint64 returns r scaled by the plain integer v.
func (r Rate) MulUint64(v uint64) (Rate, error) {
	p, overflow := r.v.Mul(u128.FromUint64(v))
	if overflow {
		return Rate{}, errors.NewMath(errors.CodeMulOverflow, "rate mul")
	}
	return Rate{v: p}, nil
}

// Mul returns r*other, preserving the WAD scaling.
func (r Rate) Mul(other Rate) (Rate, error) {
	p, overflow := r.v.Mul(other.v)
	if overflow {
		return Rate{}, errors.NewMath(errors.CodeMulOverflow, "rate mul")
	}
	q, _ := p.QuoRem64(WAD)
	return Rate{v: q}, nil
}

// DivUint64 returns r divided by the plain integer v.
func (r Rate) DivUint64(v uint64) (Rate, error) {
	if v == 0 {
		return Rate{}, errors.NewMath(errors.CodeDividedByZero, "rate div")
	}
	q, _ := r.v.QuoRem64(v)
	return Rate{v: q}, nil
}

// Div returns r/other, preserving the WAD scaling.
func (r Rate) Div(other Rate) (Rate, error) {
	if other.v.IsZero() {
		return Rate{}, errors.NewMath(errors.CodeDividedByZero, "rate div")
	}
	p, overflow := r.v.Mul(wad128())
	if overflow {
		return Rate{}, errors.NewMath(errors.CodeMulOverflow, "rate div")
	}
	q, _ := p.QuoRem(other.v)
	return Rate{v: q}, nil
}

// Pow returns r**n by exponentiation by squaring over the checked Mul.
// Pow(0) is 1.
func (r Rate) Pow(n uint64) (Rate, error) {
	result := OneRate()
	base := r
	for n > 0 {
		if n&1 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return Rate{}, err
			}
		}
		n >>= 1
		if n > 0 {
			var err error
			base, err = base.Mul(base)
			if err != nil {
				return Rate{}, err
			}
		}
	}
	return result, nil
}

// String renders r with all Scale fractional digits.
func (r Rate) String() string {
	return renderScaled(r.v.String())
}

func wad128() u128.U128 {
	return u128.FromUint64(WAD)
}
