package runtime

import (
	"math"
	"strconv"
	"strings"
)

// ToBoolean implements the engine's truthiness predicate (§4.3): false,
// 0, NaN, "", null, and undefined are falsy; everything else is truthy.
func ToBoolean(v Value) bool {
	switch v.Kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.Boolean
	case KindNumber:
		return v.Number != 0 && !math.IsNaN(v.Number)
	case KindString:
		return v.Str != ""
	default:
		return true
	}
}

// ToNumber coerces v following the engine's simplified numeric coercion:
// booleans become 0/1, strings parse as a float (NaN on failure), null
// becomes 0, undefined and everything else becomes NaN.
func ToNumber(v Value) float64 {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case KindNull:
		return 0
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}

// ToString coerces v to its string representation, reusing Value.String
// for every variant (numbers render via formatNumber, matching JS's
// Number-to-string rules closely enough for this engine's scope).
func ToString(v Value) string {
	return v.String()
}

// ToInt64 truncates v's numeric coercion to an int64 for the bitwise
// operators (~, |, &, ^, <<, >>), matching ECMAScript's ToInt32-adjacent
// behavior closely enough for this engine's non-normative integer ops.
func ToInt64(v Value) int64 {
	n := ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int64(n)
}
