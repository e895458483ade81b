// Package u128 implements a fixed-width unsigned 128-bit integer, the
// narrower sibling of internal/u192 used for rate arithmetic where the
// extra headroom of 192 bits is not needed.
package u128

import "math/bits"

// U128 is an unsigned 128-bit integer stored as two little-endian
// 64-bit words.
type U128 [2]uint64

// FromUint64 returns v widened to 128 bits.
func FromUint64(v uint64) U128 {
	return U128{v}
}

// FromWords returns the value with the given little-endian word pair.
func FromWords(lo, hi uint64) U128 {
	return U128{lo, hi}
}

// Words returns the little-endian word pair.
func (x U128) Words() (lo, hi uint64) {
	return x[0], x[1]
}

// Uint64 returns the low word and reports whether the value fits in 64
// bits.
func (x U128) Uint64() (uint64, bool) {
	return x[0], x[1] == 0
}

// IsZero reports whether x is zero.
func (x U128) IsZero() bool {
	return x[0]|x[1] == 0
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to
// or greater than y.
func (x U128) Cmp(y U128) int {
	if x[1] != y[1] {
		if x[1] < y[1] {
			return -1
		}
		return 1
	}
	if x[0] != y[0] {
		if x[0] < y[0] {
			return -1
		}
		return 1
	}
	return 0
}

// Add returns x+y and a nonzero carry when the sum overflows 128 bits.
func (x U128) Add(y U128) (U128, uint64) {
	var z U128
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	return z, c
}

// Sub returns x-y and a nonzero borrow when y exceeds x.
func (x U128) Sub(y U128) (U128, uint64) {
	var z U128
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	return z, b
}

// Mul returns x*y and reports whether the product overflowed 128 bits.
func (x U128) Mul(y U128) (U128, bool) {
	hi0, lo0 := bits.Mul64(x[0], y[0])
	hi1, lo1 := bits.Mul64(x[0], y[1])
	hi2, lo2 := bits.Mul64(x[1], y[0])
	mid, c1 := bits.Add64(hi0, lo1, 0)
	mid, c2 := bits.Add64(mid, lo2, 0)
	overflow := x[1] != 0 && y[1] != 0 ||
		hi1 != 0 || hi2 != 0 || c1 != 0 || c2 != 0
	return U128{lo0, mid}, overflow
}

// QuoRem returns the quotient and remainder of x/y. Division by zero
// returns zero values; callers are expected to reject a zero divisor
// before dividing.
func (x U128) QuoRem(y U128) (q, r U128) {
	if y[1] == 0 {
		if y[0] == 0 {
			return U128{}, U128{}
		}
		q, rem := x.QuoRem64(y[0])
		return q, FromUint64(rem)
	}
	if x.Cmp(y) < 0 {
		return U128{}, x
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
func (x U128) QuoRem64(d uint64) (U128, uint64) {
	var q U128
	var r uint64
	q[1], r = bits.Div64(0, x[1], d)
	q[0], r = bits.Div64(r, x[0], d)
	return q, r
}

// Lsh returns x shifted left by n bits.
func (x U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{0, x[0] << (n - 64)}
	}
	return U128{x[0] << n, x[1]<<n | x[0]>>(64-n)}
}

// Rsh returns x shifted right by n bits.
func (x U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{x[1] >> (n - 64)}
	}
	return U128{x[0]>>n | x[1]<<(64-n), x[1] >> n}
}

func (x U128) bitLen() int {
	if x[1] != 0 {
		return 64 + bits.Len64(x[1])
	}
	return bits.Len64(x[0])
}

func (x U128) setBit(n uint) U128 {
	x[n/64] |= 1 << (n % 64)
	return x
}

const chunk = 10_000_000_000_000_000_000

// String returns the base-10 rendering of x.
func (x U128) String() string {
	if x.IsZero() {
		return "0"
	}
	// 2^128 < 10^39
	var buf [39]byte
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
