// Package errors defines the failure types reported by the precise math
// library. Checked-arithmetic failures carry a Code whose numeric value
// is frozen to match the on-chain program error numbering.
package errors

import "fmt"

// Code identifies a checked-math failure category. The numeric values
// are stable and must not be reordered: they are the custom program
// error codes emitted on chain.
type Code uint32

const (
	// CodeAddOverflow indicates an addition exceeded the backing width.
	CodeAddOverflow Code = iota
	// CodeSubUnderflow indicates a subtraction went below zero.
	CodeSubUnderflow
	// CodeMulOverflow indicates a multiplication exceeded the backing width.
	CodeMulOverflow
	// CodeDividedByZero indicates a division by a zero value.
	CodeDividedByZero
	// CodeRoundUint64 indicates a rounded value does not fit in 64 bits.
	CodeRoundUint64
	// CodeRoundUint128 indicates a scaled value does not fit in 128 bits.
	CodeRoundUint128
)

// String returns a stable label for the code.
func (c Code) String() string {
	switch c {
	case CodeAddOverflow:
		return "AddOverflow"
	case CodeSubUnderflow:
		return "Underflow"
	case CodeMulOverflow:
		return "MulOverflow"
	case CodeDividedByZero:
		return "DividedByZero"
	case CodeRoundUint64:
		return "UnableToRoundU64"
	case CodeRoundUint128:
		return "UnableToRoundU128"
	default:
		return fmt.Sprintf("Code(%d)", uint32(c))
	}
}

// Math reports a checked arithmetic failure with the operation that
// produced it.
type Math struct {
	Code Code
	Op   string
}

// NewMath returns a Math error for the given code and operation.
func NewMath(code Code, op string) *Math {
	return &Math{Code: code, Op: op}
}

// Error returns the formatted error message.
func (e *Math) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// Is matches any Math error carrying the same code, so callers can use
// errors.Is against the exported sentinels regardless of which
// operation failed.
func (e *Math) Is(target error) bool {
	t, ok := target.(*Math)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrAddOverflow   = &Math{Code: CodeAddOverflow}
	ErrSubUnderflow  = &Math{Code: CodeSubUnderflow}
	ErrMulOverflow   = &Math{Code: CodeMulOverflow}
	ErrDividedByZero = &Math{Code: CodeDividedByZero}
	ErrRoundUint64   = &Math{Code: CodeRoundUint64}
	ErrRoundUint128  = &Math{Code: CodeRoundUint128}
)
