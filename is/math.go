package is

import (
	"math"

	"github.com/viant/treewalk/conv"
)

// Finite returns whether a numeric value is neither infinite nor NaN, ok is false for non numbers
func Finite(v any) (result bool, ok bool) {
	f, ok := conv.AsFloat(v)
	if !ok {
		return false, false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f), true
}

// Even returns whether an integer, or text holding one, is even
func Even(v any) (result bool, ok bool) {
	f, ok := integerOf(v)
	if !ok {
		return false, false
	}
	return math.Mod(f, 2) == 0, true
}

// Odd returns whether an integer, or text holding one, is odd
func Odd(v any) (result bool, ok bool) {
	f, ok := integerOf(v)
	if !ok {
		return false, false
	}
	return math.Mod(f, 2) != 0, true
}

// Positive returns whether a number, or numeric text, is greater than zero
func Positive(v any) (result bool, ok bool) {
	f, ok := numberOf(v)
	if !ok {
		return false, false
	}
	return f > 0, true
}

// Negative returns whether a number, or numeric text, is less than zero
func Negative(v any) (result bool, ok bool) {
	f, ok := numberOf(v)
	if !ok {
		return false, false
	}
	return f < 0, true
}

func numberOf(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		return conv.NumericString(s)
	}
	f, ok := conv.AsFloat(v)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func integerOf(v any) (float64, bool) {
	f, ok := numberOf(v)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}
