package conv

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// AsFloat returns float value of a Go numeric value, strings and booleans are not numeric.
func AsFloat(value any) (float64, bool) {
	switch actual := value.(type) {
	case float64:
		return actual, true
	case int:
		return float64(actual), true
	case int64:
		return float64(actual), true
	case uint64:
		return float64(actual), true
	case float32:
		return float64(actual), true
	case int8:
		return float64(actual), true
	case int16:
		return float64(actual), true
	case int32:
		return float64(actual), true
	case uint:
		return float64(actual), true
	case uint8:
		return float64(actual), true
	case uint16:
		return float64(actual), true
	case uint32:
		return float64(actual), true
	case nil, string, bool:
		return 0, false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rValue.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), true
	}
	return 0, false
}

// IsInteger returns true for numeric kinds holding a whole number
func IsInteger(value any) bool {
	f, ok := AsFloat(value)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f == math.Trunc(f)
}

// ParseNumber converts text with number literal rules: surrounding white space is
// ignored, empty text is 0, 0x/0o/0b prefixes and Infinity are recognised;
// anything else that is not a decimal literal is NaN.
func ParseNumber(text string) float64 {
	text = strings.Trim(strings.TrimSpace(text), "\ufeff")
	if text == "" {
		return 0
	}
	switch text {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return math.Inf(1)
				}
				return math.NaN()
			}
			return float64(u)
		}
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.ContainsAny(lower, "_xp") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// ToNumber converts a scalar to a number: nil and false are 0, true is 1,
// strings follow ParseNumber. Other values are NaN.
func ToNumber(value any) float64 {
	if f, ok := AsFloat(value); ok {
		return f
	}
	switch actual := value.(type) {
	case nil:
		return 0
	case bool:
		if actual {
			return 1
		}
		return 0
	case string:
		return ParseNumber(actual)
	}
	return math.NaN()
}

// NumericString returns number of text that holds a finite numeric literal,
// blank text is not numeric.
func NumericString(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	f := ParseNumber(text)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
