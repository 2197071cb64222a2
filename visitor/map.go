package visitor

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// MapVisitor holds a map of type map[K]E and implements the Visitor interface.
// Go maps are unordered, so keys are visited in ascending order.
type MapVisitor[K cmp.Ordered, E any] struct {
	data map[K]E
}

// MapVisitorOf creates a new MapVisitor
func MapVisitorOf[K cmp.Ordered, E any](aMap map[K]E) Visitor[K, E] {
	visitor := &MapVisitor[K, E]{data: aMap}
	return visitor.Visit
}

// Visit iterates over the map and calls f for each (key, element).
// - If f returns (true, nil), iteration continues.
// - If f returns (false, nil), iteration stops early.
// - If f returns an error, iteration stops with that error.
func (v *MapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	keys := make([]K, 0, len(v.data))
	for k := range v.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		continueVisit, err := f(k, v.data[k])
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnyMapVisitorOf dynamically creates a string keyed visitor from any map with string keys.
func AnyMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[int](actual), nil
	case map[string]float64:
		return AnyTypedMapVisitorOf[float64](actual), nil
	case map[string]bool:
		return AnyTypedMapVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected string map key, got %v", val.Type().Key())
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns a string keyed visitor with any elements
func AnyTypedMapVisitorOf[V any](aMap map[string]V) Visitor[string, any] {
	visit := MapVisitorOf[string, V](aMap)
	return func(f func(key string, element any) (bool, error)) error {
		return visit(func(key string, element V) (bool, error) {
			return f(key, element)
		})
	}
}

// AnyMapVisitor defines reflection based map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, key := range keys {
		continueVisit, err := f(key.String(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
