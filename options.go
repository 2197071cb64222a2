package treewalk

import "github.com/viant/treewalk/conv"

type (
	// Option represents a search option
	Option func(o *options)

	options struct {
		key   *string
		equal func(a, b any) bool
		limit int
	}
)

// WithKey restricts matches to properties with the given key
func WithKey(key string) Option {
	return func(o *options) {
		o.key = &key
	}
}

// WithEqual replaces the loose equality used to compare property values
func WithEqual(equal func(a, b any) bool) Option {
	return func(o *options) {
		if equal != nil {
			o.equal = equal
		}
	}
}

// WithLimit stops the traversal once limit matches are collected, zero means no limit
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
	}
}

func newOptions(opts []Option) *options {
	ret := &options{equal: conv.LooseEqual}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (o *options) matches(property *Property, value any) bool {
	if o.key != nil && property.Key != *o.key {
		return false
	}
	return o.equal(property.Value, value)
}
