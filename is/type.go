package is

import (
	"math"
	"reflect"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/viant/treewalk/conv"
	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/visitor"
)

// Composite returns true for a non null value that can be traversed
func Composite(v any) bool {
	return visitor.IsComposite(v)
}

// Numeric returns true for a Go numeric value other than NaN
func Numeric(v any) bool {
	f, ok := conv.AsFloat(v)
	return ok && !math.IsNaN(f)
}

// Present returns false for null, empty text and composites without properties
func Present(v any) bool {
	if Null(v) {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	if visit, ok := visitor.Of(v); ok {
		return visitor.Count(visit) > 0
	}
	return true
}

// Boolean returns true for boolean values
func Boolean(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

// Number returns true for any Go numeric value, NaN and infinities included
func Number(v any) bool {
	_, ok := conv.AsFloat(v)
	return ok
}

// Integer returns true for a numeric value holding a whole number
func Integer(v any) bool {
	return conv.IsInteger(v)
}

// Float returns true for a finite numeric value with a fractional part
func Float(v any) bool {
	f, ok := conv.AsFloat(v)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f != math.Trunc(f)
}

// String returns true for text values
func String(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

// Char returns true for text holding exactly one character
func Char(v any) bool {
	s, ok := v.(string)
	return ok && utf8.RuneCountInString(s) == 1
}

// Null returns true for nil and nil references (pointer, map, slice, func, chan)
func Null(v any) bool {
	if v == nil {
		return true
	}
	if obj, ok := v.(*document.Object); ok {
		return obj == nil
	}
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rValue.IsNil()
	}
	return false
}

// Array returns true for non null slices and arrays
func Array(v any) bool {
	return visitor.IsSequence(v)
}

// Object returns true for any non null composite, date or regular expression
func Object(v any) bool {
	return Composite(v) || Date(v) || Regexp(v)
}

// PlainObject returns true for non null mappings and structs
func PlainObject(v any) bool {
	return Composite(v) && !Array(v)
}

// Date returns true for time values
func Date(v any) bool {
	switch actual := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return actual != nil
	}
	return false
}

// Regexp returns true for a compiled regular expression
func Regexp(v any) bool {
	r, ok := v.(*regexp.Regexp)
	return ok && r != nil
}

// Func returns true for non nil functions
func Func(v any) bool {
	if v == nil {
		return false
	}
	rValue := reflect.ValueOf(v)
	return rValue.Kind() == reflect.Func && !rValue.IsNil()
}

// List returns true for non null values with a length other than text: sequences, mappings and channels
func List(v any) bool {
	if Null(v) {
		return false
	}
	if _, ok := v.(*document.Object); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	}
	return false
}
