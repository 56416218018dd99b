package symbols

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// Kind
// =============================================================================

// Kind identifies the category of a validation failure.
type Kind int

// Validation failure kinds.
const (
	// KindDuplicateSymbol indicates a symbol list named the same symbol twice.
	KindDuplicateSymbol Kind = iota + 1
	// KindMissingSymbol indicates reference symbols absent from the candidate.
	KindMissingSymbol
	// KindExtraSymbol indicates candidate symbols absent from the reference set.
	KindExtraSymbol
	// KindInvalidBooleanValue indicates a value outside the Boolean domain.
	KindInvalidBooleanValue
)

// String returns the snake_case code of the kind.
func (k Kind) String() string {
	switch k {
	case KindDuplicateSymbol:
		return "duplicate_symbol"
	case KindMissingSymbol:
		return "missing_symbol"
	case KindExtraSymbol:
		return "extra_symbol"
	case KindInvalidBooleanValue:
		return "invalid_boolean_value"
	default:
		return "unknown"
	}
}

// ParseKind converts a snake_case code back to a Kind.
// Returns the kind and true if valid, or 0 and false otherwise.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duplicate_symbol":
		return KindDuplicateSymbol, true
	case "missing_symbol":
		return KindMissingSymbol, true
	case "extra_symbol":
		return KindExtraSymbol, true
	case "invalid_boolean_value":
		return KindInvalidBooleanValue, true
	default:
		return 0, false
	}
}

// =============================================================================
// Errors
// =============================================================================

// Sentinel errors, one per Kind. Every typed error matches its sentinel with
// errors.Is.
var (
	ErrDuplicateSymbol     = errors.New("duplicate symbol")
	ErrMissingSymbol       = errors.New("missing symbol")
	ErrExtraSymbol         = errors.New("extra symbol")
	ErrInvalidBooleanValue = errors.New("invalid boolean value")
)

// Error is the interface implemented by all validation errors.
type Error interface {
	error
	Kind() Kind
}

// baseError provides common error functionality.
type baseError struct {
	kind Kind
	msg  string
}

func (e *baseError) Kind() Kind    { return e.kind }
func (e *baseError) Error() string { return e.msg }

// Is reports whether target is the sentinel for this error's kind.
func (e *baseError) Is(target error) bool {
	return target == sentinelFor(e.kind)
}

func sentinelFor(k Kind) error {
	switch k {
	case KindDuplicateSymbol:
		return ErrDuplicateSymbol
	case KindMissingSymbol:
		return ErrMissingSymbol
	case KindExtraSymbol:
		return ErrExtraSymbol
	case KindInvalidBooleanValue:
		return ErrInvalidBooleanValue
	default:
		return nil
	}
}

// DuplicateSymbolError reports a symbol list containing repeated names.
type DuplicateSymbolError struct {
	baseError
	Symbols []string // Repeated names, sorted
}

// NewDuplicateSymbolError creates a duplicate symbol error.
func NewDuplicateSymbolError(symbols []string) *DuplicateSymbolError {
	msg := "received duplicate symbols"
	if len(symbols) > 0 {
		msg += ": " + quoteJoin(symbols)
	}
	return &DuplicateSymbolError{
		baseError: baseError{kind: KindDuplicateSymbol, msg: msg},
		Symbols:   symbols,
	}
}

// MissingSymbolError reports reference symbols the candidate did not supply.
type MissingSymbolError struct {
	baseError
	Symbols []string // Missing names, sorted
}

// NewMissingSymbolError creates a missing symbol error.
func NewMissingSymbolError(symbols []string) *MissingSymbolError {
	return &MissingSymbolError{
		baseError: baseError{
			kind: KindMissingSymbol,
			msg:  "did not receive value for the following symbols: " + quoteJoin(symbols),
		},
		Symbols: symbols,
	}
}

// ExtraSymbolError reports candidate symbols that are not in the reference set.
type ExtraSymbolError struct {
	baseError
	Symbols []string // Unexpected names, sorted
}

// NewExtraSymbolError creates an error for a list of unexpected symbols.
func NewExtraSymbolError(symbols []string) *ExtraSymbolError {
	return &ExtraSymbolError{
		baseError: baseError{
			kind: KindExtraSymbol,
			msg:  "received unexpected symbols: " + quoteJoin(symbols),
		},
		Symbols: symbols,
	}
}

// NewUnknownKeyError creates an error for a single mapping key that is not in
// the reference set.
func NewUnknownKeyError(symbol string) *ExtraSymbolError {
	return &ExtraSymbolError{
		baseError: baseError{
			kind: KindExtraSymbol,
			msg:  fmt.Sprintf("%q is not a symbol in this expression", symbol),
		},
		Symbols: []string{symbol},
	}
}

// InvalidBooleanValueError reports a value outside the Boolean domain.
type InvalidBooleanValueError struct {
	baseError
	Symbol string // Key the value was supplied for
	Value  any    // The rejected value
}

// NewInvalidBooleanValueError creates an invalid Boolean value error.
func NewInvalidBooleanValueError(symbol string, value any) *InvalidBooleanValueError {
	return &InvalidBooleanValueError{
		baseError: baseError{
			kind: KindInvalidBooleanValue,
			msg:  fmt.Sprintf("%q passed as value for %q is not a valid Boolean value", fmt.Sprint(value), symbol),
		},
		Symbol: symbol,
		Value:  value,
	}
}

// KindOf returns the Kind of the first validation error in err's chain.
func KindOf(err error) (Kind, bool) {
	var verr Error
	if errors.As(err, &verr) {
		return verr.Kind(), true
	}
	return 0, false
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
