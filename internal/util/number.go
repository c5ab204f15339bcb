package util

import (
	"math"
	"strconv"
	"strings"
)

// CoerceFloat converts a raw form value to a definite float64. Anything that
// does not parse to a finite number becomes 0 so a malformed field never
// blocks a request or a render.
func CoerceFloat(raw any) float64 {
	var v float64
	switch val := raw.(type) {
	case nil:
		return 0
	case float64:
		v = val
	case float32:
		v = float64(val)
	case int:
		v = float64(val)
	case int64:
		v = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoerceInt applies the CoerceFloat policy and truncates toward zero.
func CoerceInt(raw any) int {
	return int(CoerceFloat(raw))
}

// ClampFloat constrains v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
