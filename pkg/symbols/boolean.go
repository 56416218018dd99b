package symbols

import (
	"fmt"
	"strings"
)

// BooleanLiterals lists the textual forms accepted by ParseBoolean.
// Matching is case-insensitive.
var BooleanLiterals = []string{"1", "0", "true", "false"}

// IsBoolean reports whether v belongs to the Boolean value domain.
//
// The domain is {1, 0, true, false}: a bool, or any integer or float that is
// numerically equal to 0 or 1. Strings are never members; convert textual
// input with ParseBoolean first.
func IsBoolean(v any) bool {
	switch x := v.(type) {
	case bool:
		return true
	case int:
		return x == 0 || x == 1
	case int8:
		return x == 0 || x == 1
	case int16:
		return x == 0 || x == 1
	case int32:
		return x == 0 || x == 1
	case int64:
		return x == 0 || x == 1
	case uint:
		return x == 0 || x == 1
	case uint8:
		return x == 0 || x == 1
	case uint16:
		return x == 0 || x == 1
	case uint32:
		return x == 0 || x == 1
	case uint64:
		return x == 0 || x == 1
	case float32:
		return x == 0 || x == 1
	case float64:
		return x == 0 || x == 1
	default:
		return false
	}
}

// ParseBoolean converts a textual Boolean literal to a bool.
func ParseBoolean(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not one of %s", s, strings.Join(BooleanLiterals, ", "))
	}
}
