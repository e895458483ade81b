// Package precise implements math for preserving precision of token
// amounts, which are limited on chain to at most 64 bits.
//
// Values are scaled by a WAD (10^18) to preserve precision up to 18
// decimal places. Decimal is backed by an unsigned 192-bit integer
// rather than 256 bits to reduce compute cost, at the price of losing
// arithmetic headroom at the high end of the 64-bit range. Rate is the
// narrower 128-bit variant used for interest and utilization rates.
// Every operation is checked; overflow, underflow and division by zero
// are reported as errors, never wrapped silently.
package precise

import (
	"github.com/port-finance/precise/errors"
	"github.com/port-finance/precise/internal/u192"
)

// Scale is the number of base-10 digits preserved to the right of the
// decimal point.
const Scale = 18

const (
	// WAD is the scaling factor applied to every stored value: 10^Scale.
	WAD uint64 = 1_000_000_000_000_000_000
	// HalfWAD is half the scaling factor, used for half-up rounding.
	HalfWAD uint64 = WAD / 2
	// PercentScaler converts whole percentages to scaled values.
	PercentScaler uint64 = WAD / 100
	// BipsScaler converts basis points to scaled values.
	BipsScaler uint64 = WAD / 10_000
)

// Decimal is a WAD-scaled unsigned fixed-point value precise to 18
// decimal places. The zero value is 0.
type Decimal struct {
	v u192.U192
}

// Zero returns the decimal 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns the decimal 1.
func One() Decimal {
	return Decimal{v: wad192()}
}

// FromUint64 returns v as a decimal.
func FromUint64(v uint64) Decimal {
	d, _ := u192.FromUint64(v).Mul(wad192())
	return Decimal{v: d}
}

// FromPercent returns p% as a decimal.
func FromPercent(p uint8) Decimal {
	return Decimal{v: u192.FromUint64(uint64(p) * PercentScaler)}
}

// FromBips returns b basis points as a decimal. The widening multiply
// cannot overflow 192 bits.
func FromBips(b uint64) Decimal {
	v, _ := u192.FromUint64(b).Mul(u192.FromUint64(BipsScaler))
	return Decimal{v: v}
}

// DecimalFromRate widens a rate to a decimal. The conversion is exact.
func DecimalFromRate(r Rate) Decimal {
	lo, hi := r.v.Words()
	return Decimal{v: u192.FromWords(lo, hi)}
}

// DecimalFromScaled returns the decimal with the given raw WAD-scaled
// value.
func DecimalFromScaled(s Scaled) Decimal {
	return Decimal{v: u192.FromWords(s.Lo, s.Hi)}
}

// Scaled returns the raw WAD-scaled value if it fits in 128 bits.
func (d Decimal) Scaled() (Scaled, error) {
	lo, hi, ok := d.v.Words()
	if !ok {
		return Scaled{}, errors.NewMath(errors.CodeRoundUint128, "decimal scaled value")
	}
	return Scaled{Lo: lo, Hi: hi}, nil
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.v.IsZero()
}

// Cmp returns -1, 0 or 1 depending on whether d is less than, equal to
// or greater than other.
func (d Decimal) Cmp(other Decimal) int {
	return d.v.Cmp(other.v)
}

// Eq reports whether d and other hold the same value.
func (d Decimal) Eq(other Decimal) bool {
	return d.v == other.v
}

// RoundUint64 rounds half-up to the nearest unsigned 64-bit integer.
func (d Decimal) RoundUint64() (uint64, error) {
	sum, carry := d.v.Add(u192.FromUint64(HalfWAD))
	if carry != 0 {
		return 0, errors.NewMath(errors.CodeAddOverflow, "decimal round")
	}
	q, _ := sum.QuoRem64(WAD)
	v, ok := q.Uint64()
	if !ok {
		return 0, errors.NewMath(errors.CodeRoundUint64, "decimal round")
	}
	return v, nil
}

// CeilUint64 rounds up to the nearest unsigned 64-bit integer.
func (d Decimal) CeilUint64() (uint64, error) {
	sum, carry := d.v.Add(u192.FromUint64(WAD - 1))
	if carry != 0 {
		return 0, errors.NewMath(errors.CodeAddOverflow, "decimal ceil")
	}
	q, _ := sum.QuoRem64(WAD)
	v, ok := q.Uint64()
	if !ok {
		return 0, errors.NewMath(errors.CodeRoundUint64, "decimal ceil")
	}
	return v, nil
}

// FloorUint64 rounds down to the nearest unsigned 64-bit integer.
func (d Decimal) FloorUint64() (uint64, error) {
	q, _ := d.v.QuoRem64(WAD)
	v, ok := q.Uint64()
	if !ok {
		return 0, errors.NewMath(errors.CodeRoundUint64, "decimal floor")
	}
	return v, nil
}

// Add returns d+other.
func (d Decimal) Add(other Decimal) (Decimal, error) {
	sum, carry := d.v.Add(other.v)
	if carry != 0 {
		return Decimal{}, errors.NewMath(errors.CodeAddOverflow, "decimal add")
	}
	return Decimal{v: sum}, nil
}

// Sub returns d-other.
func (d Decimal) Sub(other Decimal) (Decimal, error) {
	diff, borrow := d.v.Sub(other.v)
	if borrow != 0 {
		return Decimal{}, errors.NewMath(errors.CodeSubUnderflow, "decimal sub")
	}
	return Decimal{v: diff}, nil
}

// MulUint64 returns d scaled by the plain integer v.
func (d Decimal) MulUint64(v uint64) (Decimal, error) {
	p, overflow := d.v.Mul(u192.FromUint64(v))
	if overflow {
		return Decimal{}, errors.NewMath(errors.CodeMulOverflow, "decimal mul")
	}
	return Decimal{v: p}, nil
}

// MulRate returns d*r.
func (d Decimal) MulRate(r Rate) (Decimal, error) {
	return d.Mul(DecimalFromRate(r))
}

// Mul returns d*other, preserving the WAD scaling.
func (d Decimal) Mul(other Decimal) (Decimal, error) {
	p, overflow := d.v.Mul(other.v)
	if overflow {
		return Decimal{}, errors.NewMath(errors.CodeMulOverflow, "decimal mul")
	}
	q, _ := p.QuoRem64(WAD)
	return Decimal{v: q}, nil
}

// DivUint64 returns d divided by the plain integer v.
func (d Decimal) DivUint64(v uint64) (Decimal, error) {
	if v == 0 {
		return Decimal{}, errors.NewMath(errors.CodeDividedByZero, "decimal div")
	}
	q, _ := d.v.QuoRem64(v)
	return Decimal{v: q}, nil
}

// DivRate returns d/r.
func (d Decimal) DivRate(r Rate) (Decimal, error) {
	return d.Div(DecimalFromRate(r))
}

// Div returns d/other, preserving the WAD scaling.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.v.IsZero() {
		return Decimal{}, errors.NewMath(errors.CodeDividedByZero, "decimal div")
	}
	p, overflow := d.v.Mul(wad192())
	if overflow {
		return Decimal{}, errors.NewMath(errors.CodeMulOverflow, "decimal div")
	}
	q, _ := p.QuoRem(other.v)
	return Decimal{v: q}, nil
}

// String renders d with all Scale fractional digits, matching the
// on-chain display form: the raw scaled value with a decimal point
// inserted Scale digits from the right, zero padded below one.
func (d Decimal) String() string {
	return renderScaled(d.v.String())
}

func renderScaled(s string) string {
	if len(s) <= Scale {
		pad := make([]byte, Scale-len(s))
		for i := range pad {
			pad[i] = '0'
		}
		return "0." + string(pad) + s
	}
	return s[:len(s)-Scale] + "." + s[len(s)-Scale:]
}

func wad192() u192.U192 {
	return u192.FromUint64(WAD)
}
