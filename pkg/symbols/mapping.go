package symbols

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedPair is returned by ParseAssignment for a token without '='.
var ErrMalformedPair = errors.New("expected NAME=VALUE")

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateMapping checks that every key of candidate is in reference and that
// every value is in the Boolean domain (see IsBoolean).
//
// Keys are visited in sorted order and validation stops at the first offending
// pair: an unknown key yields *ExtraSymbolError, a bad value yields
// *InvalidBooleanValueError. Reference symbols absent from candidate are not
// reported; use ValidateAssignment for that.
func ValidateMapping(candidate map[string]any, reference Set) error {
	for _, k := range sortedKeys(candidate) {
		if !reference.Has(k) {
			return NewUnknownKeyError(k)
		}
		if v := candidate[k]; !IsBoolean(v) {
			return NewInvalidBooleanValueError(k, v)
		}
	}
	return nil
}

// ValidateAssignment checks that candidate is a complete, well-formed
// assignment of Boolean values to the symbols of reference.
// It runs ValidateMapping and then reconciles the keys with Reconcile, so an
// absent symbol is reported as *MissingSymbolError.
func ValidateAssignment(candidate map[string]any, reference Set) error {
	if err := ValidateMapping(candidate, reference); err != nil {
		return err
	}
	return Reconcile(sortedKeys(candidate), reference)
}

// ParseAssignment parses NAME=VALUE tokens into a mapping suitable for
// ValidateMapping. Values that parse as Boolean literals become bools; any
// other value is kept as its raw string so validation can report it.
// A name given more than once yields *DuplicateSymbolError listing the
// repeated names.
func ParseAssignment(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	var dups []string
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%q: %w", p, ErrMalformedPair)
		}
		name = strings.TrimSpace(name)
		if _, seen := out[name]; seen {
			dups = append(dups, name)
			continue
		}
		if b, err := ParseBoolean(raw); err == nil {
			out[name] = b
		} else {
			out[name] = raw
		}
	}
	if len(dups) > 0 {
		return nil, NewDuplicateSymbolError(uniqueSorted(dups))
	}
	return out, nil
}
