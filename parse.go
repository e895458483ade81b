package precise

import (
	"github.com/port-finance/precise/errors"
	"github.com/port-finance/precise/internal/u192"
)

// ParseDecimal reads a decimal from its base-10 rendering, the inverse
// of Decimal.String. At most Scale fractional digits are accepted; the
// value must fit the 192-bit backing width.
func ParseDecimal(s string) (Decimal, error) {
	v, err := parseScaled192(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{v: v}, nil
}

// ParseRate reads a rate from its base-10 rendering, the inverse of
// Rate.String. The value must fit the 128-bit backing width.
func ParseRate(s string) (Rate, error) {
	v, err := parseScaled192(s)
	if err != nil {
		return Rate{}, err
	}
	lo, hi, ok := v.Words()
	if !ok {
		return Rate{}, &errors.Parse{Kind: errors.ParseOverflow}
	}
	return RateFromScaled(Scaled{Lo: lo, Hi: hi}), nil
}

// parseScaled192 reads an unsigned decimal lexical value and returns it
// WAD-scaled: the integer digits followed by the fractional digits
// padded out to Scale places.
func parseScaled192(s string) (u192.U192, error) {
	if len(s) == 0 {
		return u192.U192{}, &errors.Parse{Kind: errors.ParseEmpty}
	}
	intPart, fracPart, err := splitParts(s)
	if err != nil {
		return u192.U192{}, err
	}
	if len(fracPart) > Scale {
		return u192.U192{}, &errors.Parse{Kind: errors.ParseTooPrecise}
	}
	var v u192.U192
	for i := 0; i < len(intPart); i++ {
		v, err = pushDigit(v, intPart[i])
		if err != nil {
			return u192.U192{}, err
		}
	}
	for i := 0; i < Scale; i++ {
		c := byte('0')
		if i < len(fracPart) {
			c = fracPart[i]
		}
		v, err = pushDigit(v, c)
		if err != nil {
			return u192.U192{}, err
		}
	}
	return v, nil
}

func splitParts(s string) (intPart, fracPart string, err error) {
	dot := -1
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			if dot >= 0 {
				return "", "", &errors.Parse{Kind: errors.ParseMultipleDots}
			}
			dot = i
		default:
			return "", "", &errors.Parse{Kind: errors.ParseBadChar}
		}
	}
	if digits == 0 {
		return "", "", &errors.Parse{Kind: errors.ParseNoDigits}
	}
	if dot < 0 {
		return s, "", nil
	}
	return s[:dot], s[dot+1:], nil
}

func pushDigit(v u192.U192, c byte) (u192.U192, error) {
	p, overflow := v.Mul(u192.FromUint64(10))
	if overflow {
		return u192.U192{}, &errors.Parse{Kind: errors.ParseOverflow}
	}
	sum, carry := p.Add(u192.FromUint64(uint64(c - '0')))
	if carry != 0 {
		return u192.U192{}, &errors.Parse{Kind: errors.ParseOverflow}
	}
	return sum, nil
}
