package internal

import (
	"math"
	"strconv"
)

// isTruthy implements spec.md §4.4: nil and boolean false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements same-kind host equality; cross-kind comparisons are
// always unequal, and nil equals only nil. Instances and callables
// compare by identity, which Go's == already gives us for pointers and
// interface values holding pointers.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a runtime value the way the `print` statement does,
// per spec.md §6.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case *function:
		return v.String()
	case *nativeFunction:
		return v.String()
	case *class:
		return v.String()
	case *instance:
		return v.String()
	default:
		return ""
	}
}

// formatNumber prints the shortest round-trip form, collapsing integral
// values that fit in an int64 to their bare integer form (spec.md §9:
// scenario A depends on "7", not "7.0"). Larger integral values and
// non-integral values use strconv's 'g' format, which may be exponent form.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}

	if n == math.Trunc(n) && math.Abs(n) < 1<<63 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
