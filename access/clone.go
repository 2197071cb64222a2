package access

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/is"
)

// Clone returns a deep copy of documents, sequences and maps; scalars are returned as is.
// Structs are copied by value.
func Clone(v any) any {
	switch actual := v.(type) {
	case nil, string, bool, time.Time:
		return v
	case *time.Time:
		if actual == nil {
			return actual
		}
		ts := *actual
		return &ts
	case *document.Object:
		if actual == nil {
			return actual
		}
		ret := document.NewObject()
		for key, value := range actual.Iter() {
			ret.Set(key, Clone(value))
		}
		return ret
	case []any:
		if actual == nil {
			return actual
		}
		ret := make([]any, len(actual))
		for i, item := range actual {
			ret[i] = Clone(item)
		}
		return ret
	case map[string]any:
		if actual == nil {
			return actual
		}
		ret := make(map[string]any, len(actual))
		for key, value := range actual {
			ret[key] = Clone(value)
		}
		return ret
	}
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Slice:
		if rValue.IsNil() {
			return v
		}
		ret := reflect.MakeSlice(rValue.Type(), rValue.Len(), rValue.Len())
		for i := 0; i < rValue.Len(); i++ {
			setCloned(ret.Index(i), rValue.Index(i))
		}
		return ret.Interface()
	case reflect.Map:
		if rValue.IsNil() {
			return v
		}
		ret := reflect.MakeMapWithSize(rValue.Type(), rValue.Len())
		iter := rValue.MapRange()
		for iter.Next() {
			item := reflect.New(rValue.Type().Elem()).Elem()
			setCloned(item, iter.Value())
			ret.SetMapIndex(iter.Key(), item)
		}
		return ret.Interface()
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			return v
		}
		ret := reflect.New(rValue.Elem().Type())
		ret.Elem().Set(rValue.Elem())
		return ret.Interface()
	}
	return v
}

func setCloned(dest, src reflect.Value) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	cloned := reflect.ValueOf(Clone(src.Interface()))
	if !cloned.IsValid() {
		return
	}
	if cloned.Type().AssignableTo(dest.Type()) {
		dest.Set(cloned)
		return
	}
	dest.Set(src)
}

// TypeOf returns type name: null, string, number, boolean, array, object, date, regexp or function
func TypeOf(v any) string {
	switch {
	case is.Null(v):
		return "null"
	case is.String(v):
		return "string"
	case is.Number(v):
		return "number"
	case is.Boolean(v):
		return "boolean"
	case is.Array(v):
		return "array"
	case is.Date(v):
		return "date"
	case is.Regexp(v):
		return "regexp"
	case is.Func(v):
		return "function"
	}
	return "object"
}

// DropLast removes the last property of a *document.Object, or the last item of
// a *[]any, in place and returns the same reference
func DropLast(v any) (any, error) {
	switch actual := v.(type) {
	case *document.Object:
		if actual == nil {
			return nil, fmt.Errorf("%w: nil object", ErrUnsupported)
		}
		if entry, ok := actual.At(actual.Len() - 1); ok {
			actual.Delete(entry.Key)
		}
		return actual, nil
	case *[]any:
		if actual == nil {
			return nil, fmt.Errorf("%w: nil sequence", ErrUnsupported)
		}
		if n := len(*actual); n > 0 {
			*actual = (*actual)[:n-1]
		}
		return actual, nil
	}
	return nil, fmt.Errorf("%w: %T cannot be modified in place", ErrUnsupported, v)
}
