package errors

// Parse reports a lexical failure while reading a decimal string.
type Parse struct {
	Kind ParseKind
}

// Error returns the formatted error message.
func (e *Parse) Error() string {
	if e == nil {
		return ""
	}
	return "parse decimal: " + e.Kind.String()
}

// ParseKind identifies a parse failure category.
type ParseKind uint8

const (
	ParseInvalid ParseKind = iota
	ParseEmpty
	ParseBadChar
	ParseMultipleDots
	ParseNoDigits
	ParseTooPrecise
	ParseOverflow
)

// String returns a stable label for the parse failure kind.
func (k ParseKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseBadChar:
		return "bad character"
	case ParseMultipleDots:
		return "multiple dots"
	case ParseNoDigits:
		return "no digits"
	case ParseTooPrecise:
		return "more fractional digits than the scale preserves"
	case ParseOverflow:
		return "value out of range"
	default:
		return "invalid"
	}
}
