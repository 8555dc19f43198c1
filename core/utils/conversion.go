package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts loosely typed values to float64 using the lenient coercion rule:
// nil, empty strings and anything that does not parse as a finite number become 0.
// It handles standard numeric types, numeric strings, byte slices and json.Number.
func ToNumber(val any) float64 {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case int16:
		f = float64(v)
	case int8:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint8:
		f = float64(v)
	case json.Number:
		f = parseNumber(string(v))
	case string:
		f = parseNumber(v)
	case []byte:
		f = parseNumber(string(v))
	case bool:
		// Booleans are not quantities.
		return 0
	default:
		f = parseNumber(fmt.Sprintf("%v", v))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ToString converts loosely typed identifiers to string.
// Whole floats, as produced by JSON decoding of numbers, print without an exponent.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FirstNonEmpty returns the first candidate that is not blank, trimmed.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return ""
}
