package document

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/francoispqt/gojay"
)

// Array adapts a sequence to gojay array marshaler
type Array []any

// MarshalJSONArray encodes array items
func (a Array) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		switch actual := normalizeJSON(item).(type) {
		case nil:
			enc.AddNull()
		case string:
			enc.AddString(actual)
		case bool:
			enc.AddBool(actual)
		case int64:
			enc.AddInt64(actual)
		case uint64:
			enc.AddUint64(actual)
		case float64:
			enc.AddFloat64(actual)
		case *Object:
			enc.AddObject(actual)
		case Array:
			enc.AddArray(actual)
		}
	}
}

// IsNil returns true for nil array
func (a Array) IsNil() bool {
	return a == nil
}

// MarshalJSONObject encodes object entries in insertion order
func (o *Object) MarshalJSONObject(enc *gojay.Encoder) {
	for _, entry := range o.Entries() {
		switch actual := normalizeJSON(entry.Value).(type) {
		case nil:
			enc.AddNullKey(entry.Key)
		case string:
			enc.AddStringKey(entry.Key, actual)
		case bool:
			enc.AddBoolKey(entry.Key, actual)
		case int64:
			enc.AddInt64Key(entry.Key, actual)
		case uint64:
			enc.AddUint64Key(entry.Key, actual)
		case float64:
			enc.AddFloat64Key(entry.Key, actual)
		case *Object:
			enc.AddObjectKey(entry.Key, actual)
		case Array:
			enc.AddArrayKey(entry.Key, actual)
		}
	}
}

// EncodeJSON encodes a node tree as JSON, mapping key order is preserved.
func EncodeJSON(value any) ([]byte, error) {
	switch actual := normalizeJSON(value).(type) {
	case nil:
		return []byte("null"), nil
	case *Object:
		return gojay.MarshalJSONObject(actual)
	case Array:
		return gojay.MarshalJSONArray(actual)
	default:
		return gojay.Marshal(actual)
	}
}

// normalizeJSON reduces a value to one of: nil, string, bool, int64, uint64, float64, *Object, Array
func normalizeJSON(value any) any {
	switch actual := Normalize(value).(type) {
	case nil:
		return nil
	case *Object:
		if actual == nil {
			return nil
		}
		return actual
	case []any:
		return Array(actual)
	case string, bool, int64, uint64:
		return actual
	case float64:
		if math.IsNaN(actual) || math.IsInf(actual, 0) {
			return nil
		}
		return actual
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case []byte:
		return string(actual)
	case fmt.Stringer:
		return actual.String()
	default:
		rValue := reflect.ValueOf(actual)
		switch rValue.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rValue.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return rValue.Uint()
		case reflect.Float32, reflect.Float64:
			return normalizeJSON(rValue.Float())
		case reflect.Bool:
			return rValue.Bool()
		case reflect.String:
			return rValue.String()
		case reflect.Ptr, reflect.Interface:
			if rValue.IsNil() {
				return nil
			}
			return normalizeJSON(rValue.Elem().Interface())
		}
		return fmt.Sprintf("%v", actual)
	}
}
