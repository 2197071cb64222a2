package visitor

import (
	"reflect"
	"regexp"
	"time"

	"github.com/viant/treewalk/document"
)

// Of returns a string keyed visitor when value is a non-null composite:
// a document object, a slice or array, a map with string keys, or a struct
// (or pointer to one). Dates and regular expressions are scalars.
func Of(value any) (Visitor[string, any], bool) {
	switch actual := value.(type) {
	case nil:
		return nil, false
	case *document.Object:
		if actual == nil {
			return nil, false
		}
		return ObjectVisitorOf(actual), true
	case []any:
		if actual == nil {
			return nil, false
		}
		return AnyTypedSliceVisitorOf[any](actual), true
	case map[string]any:
		if actual == nil {
			return nil, false
		}
		return AnyTypedMapVisitorOf[any](actual), true
	case time.Time, *time.Time, *regexp.Regexp:
		return nil, false
	}
	rValue := reflect.ValueOf(value)
	var visit Visitor[string, any]
	var err error
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			return nil, false
		}
		if rValue.Elem().Kind() != reflect.Struct {
			return Of(rValue.Elem().Interface())
		}
		visit, err = StructVisitorOf(value)
	case reflect.Slice:
		if rValue.IsNil() {
			return nil, false
		}
		visit, err = AnySliceVisitorOf(value)
	case reflect.Array:
		visit, err = AnySliceVisitorOf(value)
	case reflect.Map:
		if rValue.IsNil() {
			return nil, false
		}
		visit, err = AnyMapVisitorOf(value)
	case reflect.Struct:
		visit, err = StructVisitorOf(value)
	default:
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return visit, true
}

// IsComposite returns true if value can be descended into
func IsComposite(value any) bool {
	_, ok := Of(value)
	return ok
}

// IsSequence returns true for non nil slices and arrays (or pointers to them)
func IsSequence(value any) bool {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return false
		}
		rValue = rValue.Elem()
	}
	switch rValue.Kind() {
	case reflect.Slice:
		return !rValue.IsNil()
	case reflect.Array:
		return true
	}
	return false
}
