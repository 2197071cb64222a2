package treewalk

import (
	"math"

	"github.com/viant/treewalk/conv"
	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/is"
	"github.com/viant/treewalk/visitor"
)

// Keys returns own keys of obj, or every key at every depth in traversal order when recursive
func Keys(obj any, recursive bool) ([]string, error) {
	visit, ok := visitor.Of(obj)
	if !ok {
		return nil, ErrNotApplicable
	}
	keys := []string{}
	add := func(key string, _ any) {
		keys = append(keys, key)
	}
	if recursive {
		walk(visit, add, nil)
		return keys, nil
	}
	_ = visit(func(key string, value any) (bool, error) {
		add(key, value)
		return true, nil
	})
	return keys, nil
}

// Values returns own values of obj, or every leaf value in traversal order when recursive
func Values(obj any, recursive bool) ([]any, error) {
	visit, ok := visitor.Of(obj)
	if !ok {
		return nil, ErrNotApplicable
	}
	values := []any{}
	add := func(_ string, value any) {
		values = append(values, value)
	}
	if recursive {
		walk(visit, nil, add)
		return values, nil
	}
	_ = visit(func(key string, value any) (bool, error) {
		add(key, value)
		return true, nil
	})
	return values, nil
}

// Flatten copies every property at every depth into a single level object.
// When keys collide the value visited last wins, the key keeps its first position.
func Flatten(obj any) (*document.Object, error) {
	result := document.NewObject()
	if !Walk(obj, result.Set, nil) {
		return nil, ErrNotApplicable
	}
	return result, nil
}

// Highest returns the highest numeric value at any depth, or -Inf if there is none
func Highest(obj any) (float64, error) {
	highest := math.Inf(-1)
	ok := Walk(obj, func(_ string, value any) {
		if !is.Numeric(value) {
			return
		}
		if f, _ := conv.AsFloat(value); f > highest {
			highest = f
		}
	}, nil)
	if !ok {
		return 0, ErrNotApplicable
	}
	return highest, nil
}

// Lowest returns the lowest numeric value at any depth, or +Inf if there is none
func Lowest(obj any) (float64, error) {
	lowest := math.Inf(1)
	ok := Walk(obj, func(_ string, value any) {
		if !is.Numeric(value) {
			return
		}
		if f, _ := conv.AsFloat(value); f < lowest {
			lowest = f
		}
	}, nil)
	if !ok {
		return 0, ErrNotApplicable
	}
	return lowest, nil
}
