// Package u192 implements a fixed-width unsigned 192-bit integer.
//
// The width is chosen so that any 64-bit token amount scaled by 10^18
// still fits, while keeping arithmetic cheaper than a full 256-bit
// representation. All operations report overflow explicitly; nothing
// wraps silently.
package u192

import "math/bits"

// U192 is an unsigned 192-bit integer stored as three little-endian
// 64-bit words.
type U192 [3]uint64

// FromUint64 returns v widened to 192 bits.
func FromUint64(v uint64) U192 {
	return U192{v}
}

// FromWords returns the value with the given 128-bit little-endian word
// pair in its low words.
func FromWords(lo, hi uint64) U192 {
	return U192{lo, hi}
}

// Words returns the low 128 bits as a little-endian word pair and
// reports whether the value fits in 128 bits.
func (x U192) Words() (lo, hi uint64, ok bool) {
	return x[0], x[1], x[2] == 0
}

// Uint64 returns the low word and reports whether the value fits in 64
// bits.
func (x U192) Uint64() (uint64, bool) {
	return x[0], x[1]|x[2] == 0
}

// IsZero reports whether x is zero.
func (x U192) IsZero() bool {
	return x[0]|x[1]|x[2] == 0
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to
// or greater than y.
func (x U192) Cmp(y U192) int {
	for i := 2; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x+y and a nonzero carry when the sum overflows 192 bits.
func (x U192) Add(y U192) (U192, uint64) {
	var z U192
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	return z, c
}

// Sub returns x-y and a nonzero borrow when y exceeds x.
func (x U192) Sub(y U192) (U192, uint64) {
	var z U192
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	return z, b
}

// Mul returns x*y and reports whether the product overflowed 192 bits.
func (x U192) Mul(y U192) (U192, bool) {
	var p [6]uint64
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := 0; j < 3; j++ {
			carry, p[i+j] = mulStep(p[i+j], x[i], y[j], carry)
		}
		p[i+3] = carry
	}
	return U192{p[0], p[1], p[2]}, p[3]|p[4]|p[5] != 0
}

// mulStep computes z + x*y + carry as a double-word result. The result
// always fits: (2^64-1)^2 + 2*(2^64-1) < 2^128.
func mulStep(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	lo, c = bits.Add64(lo, z, 0)
	hi += c
	return hi, lo
}

// QuoRem returns the quotient and remainder of x/y. Division by zero
// returns zero values; callers are expected to reject a zero divisor
// before dividing.
func (x U192) QuoRem(y U192) (q, r U192) {
	if y[1]|y[2] == 0 {
		if y[0] == 0 {
			return U192{}, U192{}
		}
		q, rem := x.QuoRem64(y[0])
		return q, FromUint64(rem)
	}
	if x.Cmp(y) < 0 {
		return U192{}, x
	}
	shift := x.bitLen() - y.bitLen()
	d := y.Lsh(uint(shift))
	r = x
	for i := shift; i >= 0; i-- {
		if r.Cmp(d) >= 0 {
			r, _ = r.Sub(d)
			q = q.setBit(uint(i))
		}
		d = d.Rsh(1)
	}
	return q, r
}

// QuoRem64 returns the quotient and remainder of x divided by a 64-bit
// divisor. The divisor must be nonzero.
func (x U192) QuoRem64(d uint64) (U192, uint64) {
	var q U192
	var r uint64
	for i := 2; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return q, r
}

// Lsh returns x shifted left by n bits.
func (x U192) Lsh(n uint) U192 {
	switch {
	case n == 0:
		return x
	case n >= 192:
		return U192{}
	case n >= 128:
		return U192{0, 0, x[0] << (n - 128)}
	case n >= 64:
		n -= 64
		if n == 0 {
			return U192{0, x[0], x[1]}
		}
		return U192{0, x[0] << n, x[1]<<n | x[0]>>(64-n)}
	}
	return U192{x[0] << n, x[1]<<n | x[0]>>(64-n), x[2]<<n | x[1]>>(64-n)}
}

// Rsh returns x shifted right by n bits.
func (x U192) Rsh(n uint) U192 {
	switch {
	case n == 0:
		return x
	case n >= 192:
		return U192{}
	case n >= 128:
		return U192{x[2] >> (n - 128)}
	case n >= 64:
		n -= 64
		if n == 0 {
			return U192{x[1], x[2]}
		}
		return U192{x[1]>>n | x[2]<<(64-n), x[2] >> n}
	}
	return U192{x[0]>>n | x[1]<<(64-n), x[1]>>n | x[2]<<(64-n), x[2] >> n}
}

func (x U192) bitLen() int {
	for i := 2; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

func (x U192) setBit(n uint) U192 {
	x[n/64] |= 1 << (n % 64)
	return x
}

// Exp10 returns 10^n, or zero when the power exceeds 192 bits.
func Exp10(n uint) U192 {
	x := FromUint64(1)
	for ; n > 0; n-- {
		var ok bool
		x, ok = mul10(x)
		if !ok {
			return U192{}
		}
	}
	return x
}

func mul10(x U192) (U192, bool) {
	z, overflow := x.Mul(FromUint64(10))
	return z, !overflow
}

// chunk is the largest power of ten that fits a 64-bit word, used to
// peel 19 decimal digits per division when rendering.
const chunk = 10_000_000_000_000_000_000

// String returns the base-10 rendering of x.
func (x U192) String() string {
	if x.IsZero() {
		return "0"
	}
	// 2^192 < 10^58
	var buf [58]byte
	i := len(buf)
	for {
		var r uint64
		x, r = x.QuoRem64(chunk)
		if x.IsZero() {
			for r > 0 {
				i--
				buf[i] = byte('0' + r%10)
				r /= 10
			}
			return string(buf[i:])
		}
		for j := 0; j < 19; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}
}
