package document

import (
	"reflect"
	"sort"
)

// Normalize converts Go maps with string keys into *Object (keys sorted) and
// other slices into []any, recursively; any other value is returned as is.
func Normalize(value any) any {
	switch actual := value.(type) {
	case nil, string, bool, *Object:
		return value
	case []any:
		ret := make([]any, len(actual))
		for i, item := range actual {
			ret[i] = Normalize(item)
		}
		return ret
	case map[string]any:
		ret := NewObject()
		for _, key := range sortedKeys(actual) {
			ret.Set(key, Normalize(actual[key]))
		}
		return ret
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice:
		if rValue.IsNil() || rValue.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		fallthrough
	case reflect.Array:
		ret := make([]any, rValue.Len())
		for i := range ret {
			ret[i] = Normalize(rValue.Index(i).Interface())
		}
		return ret
	case reflect.Map:
		if rValue.IsNil() || rValue.Type().Key().Kind() != reflect.String {
			return value
		}
		keys := rValue.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		ret := NewObject()
		for _, key := range keys {
			ret.Set(key.String(), Normalize(rValue.MapIndex(key).Interface()))
		}
		return ret
	}
	return value
}

func sortedKeys[V any](aMap map[string]V) []string {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
