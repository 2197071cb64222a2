package document

import (
	"iter"
)

// Entry represents a single key/value pair of an Object.
type Entry struct {
	Key   string
	Value any
}

// Object is a string keyed mapping that keeps keys in insertion order.
// Setting an existing key replaces its value in place.
type Object struct {
	index   map[string]int
	entries []Entry
}

// NewObject creates an Object populated with entries, later duplicates overwrite earlier ones.
func NewObject(entries ...Entry) *Object {
	ret := &Object{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		ret.Set(entry.Key, entry.Value)
	}
	return ret
}

// Set adds or replaces the value of key
func (o *Object) Set(key string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if pos, ok := o.index[key]; ok {
		o.entries[pos].Value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
}

// Get returns the value of a key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	pos, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[pos].Value, true
}

// Has returns true if key is defined
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes a key, it returns false if the key was not defined.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	pos, ok := o.index[key]
	if !ok {
		return false
	}
	delete(o.index, key)
	copy(o.entries[pos:], o.entries[pos+1:])
	o.entries[len(o.entries)-1] = Entry{}
	o.entries = o.entries[:len(o.entries)-1]
	for i := pos; i < len(o.entries); i++ {
		o.index[o.entries[i].Key] = i
	}
	return true
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// At returns the entry at position pos
func (o *Object) At(pos int) (Entry, bool) {
	if o == nil || pos < 0 || pos >= len(o.entries) {
		return Entry{}, false
	}
	return o.entries[pos], true
}

// Keys returns keys in insertion order
func (o *Object) Keys() []string {
	ret := make([]string, 0, o.Len())
	for _, entry := range o.Entries() {
		ret = append(ret, entry.Key)
	}
	return ret
}

// Values returns values in insertion order
func (o *Object) Values() []any {
	ret := make([]any, 0, o.Len())
	for _, entry := range o.Entries() {
		ret = append(ret, entry.Value)
	}
	return ret
}

// Entries returns the underlying entries; callers must not modify the returned slice.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}
	return o.entries
}

// Iter returns an iterator over all key/value pairs.
func (o *Object) Iter() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, entry := range o.Entries() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// IsNil returns true for nil object, it also satisfies gojay marshaler contract
func (o *Object) IsNil() bool {
	return o == nil
}
