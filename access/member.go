package access

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/viant/treewalk/conv"
	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/is"
	"github.com/viant/treewalk/visitor"
)

// members represents a value decomposed into positional members
type members struct {
	text      []rune
	number    bool
	composite bool
	array     bool
	entries   []document.Entry
}

func membersOf(v any) (*members, error) {
	if s, ok := v.(string); ok {
		return &members{text: []rune(s)}, nil
	}
	if is.Number(v) {
		return &members{text: []rune(conv.ToString(v)), number: true}, nil
	}
	visit, ok := visitor.Of(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
	ret := &members{composite: true, array: is.Array(v)}
	_ = visit(func(key string, value any) (bool, error) {
		ret.entries = append(ret.entries, document.Entry{Key: key, Value: value})
		return true, nil
	})
	return ret, nil
}

func (m *members) len() int {
	if m.composite {
		return len(m.entries)
	}
	return len(m.text)
}

// at returns a single member
func (m *members) at(pos int) any {
	if m.composite {
		return m.entries[pos].Value
	}
	r := m.text[pos]
	if m.number && r >= '0' && r <= '9' {
		return float64(r - '0')
	}
	return string(r)
}

// sub returns members in [from, to) as a value of the same kind
func (m *members) sub(from, to int) any {
	if m.composite {
		entries := append([]document.Entry(nil), m.entries[from:to]...)
		if m.array {
			values := make([]any, len(entries))
			for i, entry := range entries {
				values[i] = entry.Value
			}
			return values
		}
		return document.NewObject(entries...)
	}
	text := string(m.text[from:to])
	if m.number {
		return parseDigits(text)
	}
	return text
}

func parseDigits(text string) float64 {
	if text == "" {
		return math.NaN()
	}
	return conv.ParseNumber(text)
}

// ElementAt returns the member at pos: a character of text, a digit of a
// number (non digit characters as text), or the value at that position of a composite
func ElementAt(v any, pos int) (any, error) {
	m, err := membersOf(v)
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= m.len() {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}
	return m.at(pos), nil
}

// First returns the first member
func First(v any) (any, error) {
	return ElementAt(v, 0)
}

// Last returns the last member
func Last(v any) (any, error) {
	m, err := membersOf(v)
	if err != nil {
		return nil, err
	}
	if m.len() == 0 {
		return nil, fmt.Errorf("%w: empty %T", ErrOutOfRange, v)
	}
	return m.at(m.len() - 1), nil
}

// Rest returns everything but the first member
func Rest(v any) (any, error) {
	m, err := membersOf(v)
	if err != nil {
		return nil, err
	}
	return m.sub(min(1, m.len()), m.len()), nil
}

// Init returns everything but the last member
func Init(v any) (any, error) {
	m, err := membersOf(v)
	if err != nil {
		return nil, err
	}
	return m.sub(0, max(0, m.len()-1)), nil
}

// Slice returns members in [start, end), negative positions count from the end
func Slice(v any, start, end int) (any, error) {
	m, err := membersOf(v)
	if err != nil {
		return nil, err
	}
	size := m.len()
	start, end = clamp(start, size), clamp(end, size)
	if end < start {
		end = start
	}
	return m.sub(start, end), nil
}

func clamp(pos, size int) int {
	if pos < 0 {
		pos += size
	}
	return min(max(pos, 0), size)
}

// KeyRange returns properties from key from through key to, both inclusive.
// A missing from yields an empty object, a missing to reads through the end.
func KeyRange(obj any, from, to string) (*document.Object, error) {
	visit, ok := visitor.Of(obj)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, obj)
	}
	ret := document.NewObject()
	reading := false
	_ = visit(func(key string, value any) (bool, error) {
		if key == from {
			reading = true
		}
		if reading {
			ret.Set(key, value)
		}
		return !(reading && key == to), nil
	})
	return ret, nil
}

// Length returns number of characters of text, digits (and sign or point) of a number, or properties of a composite
func Length(v any) (int, error) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), nil
	}
	if visit, ok := visitor.Of(v); ok {
		return visitor.Count(visit), nil
	}
	m, err := membersOf(v)
	if err != nil {
		return 0, err
	}
	return m.len(), nil
}
