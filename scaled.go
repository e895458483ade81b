package precise

import (
	"github.com/port-finance/precise/errors"
	"github.com/port-finance/precise/internal/u128"
)

// Scaled is a raw WAD-scaled value carried across the API boundary as a
// 128-bit little-endian word pair, since Go has no native 128-bit
// integer type.
type Scaled struct {
	Lo uint64
	Hi uint64
}

// ScaledFromUint64 returns v as a raw scaled value.
func ScaledFromUint64(v uint64) Scaled {
	return Scaled{Lo: v}
}

// IsZero reports whether s is zero.
func (s Scaled) IsZero() bool {
	return s.Lo|s.Hi == 0
}

// String returns the base-10 rendering of the raw scaled integer.
func (s Scaled) String() string {
	return u128.FromWords(s.Lo, s.Hi).String()
}

// ParseScaled reads a raw scaled integer from its base-10 or 0x-prefixed
// base-16 rendering. Values must fit in 128 bits.
func ParseScaled(s string) (Scaled, error) {
	if len(s) == 0 {
		return Scaled{}, &errors.Parse{Kind: errors.ParseEmpty}
	}
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		return parseScaledHex(s[2:])
	}
	var v u128.U128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Scaled{}, &errors.Parse{Kind: errors.ParseBadChar}
		}
		p, overflow := v.Mul(u128.FromUint64(10))
		if overflow {
			return Scaled{}, &errors.Parse{Kind: errors.ParseOverflow}
		}
		v, overflow = addDigit(p, c-'0')
		if overflow {
			return Scaled{}, &errors.Parse{Kind: errors.ParseOverflow}
		}
	}
	lo, hi := v.Words()
	return Scaled{Lo: lo, Hi: hi}, nil
}

func parseScaledHex(s string) (Scaled, error) {
	if len(s) == 0 {
		return Scaled{}, &errors.Parse{Kind: errors.ParseNoDigits}
	}
	if len(s) > 32 {
		return Scaled{}, &errors.Parse{Kind: errors.ParseOverflow}
	}
	var v u128.U128
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return Scaled{}, &errors.Parse{Kind: errors.ParseBadChar}
		}
		v = v.Lsh(4)
		v, _ = addDigit(v, d)
	}
	lo, hi := v.Words()
	return Scaled{Lo: lo, Hi: hi}, nil
}

func addDigit(v u128.U128, d byte) (u128.U128, bool) {
	sum, carry := v.Add(u128.FromUint64(uint64(d)))
	return sum, carry != 0
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
