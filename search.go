package treewalk

import (
	"github.com/viant/treewalk/is"
)

// Find returns properties whose value equals value, in traversal order.
// A property is tested before its value is descended into.
func Find(obj any, value any, opts ...Option) ([]*Property, error) {
	if !is.Composite(obj) || !is.Present(value) {
		return nil, ErrNotApplicable
	}
	options := newOptions(opts)
	var matches []*Property
	Traverse(obj, func(property *Property) bool {
		if !options.matches(property, value) {
			return true
		}
		matched := *property
		matched.Path = property.Path.Clone()
		matches = append(matches, &matched)
		return options.limit == 0 || len(matches) < options.limit
	})
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

// PathToPair returns the dot path of the first property with the given key and value
func PathToPair(obj any, key string, value any, opts ...Option) (string, error) {
	return firstPath(obj, value, append(opts, WithKey(key)))
}

// PathsToPair returns dot paths of every property with the given key and value
func PathsToPair(obj any, key string, value any, opts ...Option) ([]string, error) {
	return allPaths(obj, value, append(opts, WithKey(key)))
}

// PathToValue returns the dot path of the first property with the given value
func PathToValue(obj any, value any, opts ...Option) (string, error) {
	return firstPath(obj, value, opts)
}

// PathsToValue returns dot paths of every property with the given value
func PathsToValue(obj any, value any, opts ...Option) ([]string, error) {
	return allPaths(obj, value, opts)
}

// RefByPair returns the composite holding the first property with the given key and value,
// empty key matches any key
func RefByPair(obj any, key string, value any, opts ...Option) (any, error) {
	return firstRef(obj, value, pairOptions(key, opts))
}

// RefsByPair returns composites holding every property with the given key and value,
// empty key matches any key. A holder is repeated for each of its matching properties.
func RefsByPair(obj any, key string, value any, opts ...Option) ([]any, error) {
	return allRefs(obj, value, pairOptions(key, opts))
}

// RefByValue returns the composite holding the first property with the given value
func RefByValue(obj any, value any, opts ...Option) (any, error) {
	return firstRef(obj, value, opts)
}

// RefsByValue returns composites holding every property with the given value
func RefsByValue(obj any, value any, opts ...Option) ([]any, error) {
	return allRefs(obj, value, opts)
}

func pairOptions(key string, opts []Option) []Option {
	if key == "" {
		return opts
	}
	return append(opts, WithKey(key))
}

func firstPath(obj any, value any, opts []Option) (string, error) {
	matches, err := Find(obj, value, append(opts, WithLimit(1))...)
	if err != nil {
		return "", err
	}
	return matches[0].Path.String(), nil
}

func allPaths(obj any, value any, opts []Option) ([]string, error) {
	matches, err := Find(obj, value, opts...)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(matches))
	for i, match := range matches {
		paths[i] = match.Path.String()
	}
	return paths, nil
}

func firstRef(obj any, value any, opts []Option) (any, error) {
	matches, err := Find(obj, value, append(opts, WithLimit(1))...)
	if err != nil {
		return nil, err
	}
	return matches[0].Holder, nil
}

func allRefs(obj any, value any, opts []Option) ([]any, error) {
	matches, err := Find(obj, value, opts...)
	if err != nil {
		return nil, err
	}
	refs := make([]any, len(matches))
	for i, match := range matches {
		refs[i] = match.Holder
	}
	return refs, nil
}
