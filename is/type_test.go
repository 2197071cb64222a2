package is

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/treewalk/document"
)

func TestPredicates(t *testing.T) {
	type record struct {
		Name string
	}
	var nilSlice []any
	var nilMap map[string]any
	now := time.Now()

	var testCases = []struct {
		description string
		predicate   func(v any) bool
		truthy      []any
		falsy       []any
	}{
		{
			description: "composite",
			predicate:   Composite,
			truthy:      []any{[]any{}, document.NewObject(), map[string]int{}, record{}, &record{}, [1]int{}},
			falsy:       []any{nil, nilSlice, nilMap, (*document.Object)(nil), (*record)(nil), "x", 1, now, regexp.MustCompile("x")},
		},
		{
			description: "numeric",
			predicate:   Numeric,
			truthy:      []any{1, uint64(2), 1.5, math.Inf(1), int8(-1)},
			falsy:       []any{"1", true, nil, math.NaN()},
		},
		{
			description: "present",
			predicate:   Present,
			truthy:      []any{0, false, "x", []any{nil}, document.NewObject(document.Entry{Key: "a"}), record{}, now},
			falsy:       []any{nil, "", []any{}, document.NewObject(), map[string]any{}, nilSlice, (*record)(nil), struct{}{}},
		},
		{
			description: "boolean",
			predicate:   Boolean,
			truthy:      []any{true, false},
			falsy:       []any{1, "true", nil},
		},
		{
			description: "number",
			predicate:   Number,
			truthy:      []any{0, 1.5, math.NaN(), uint16(3)},
			falsy:       []any{"1", nil, false},
		},
		{
			description: "integer",
			predicate:   Integer,
			truthy:      []any{0, -3, 2.0, uint(7)},
			falsy:       []any{1.5, "2", math.Inf(1), math.NaN(), true},
		},
		{
			description: "float",
			predicate:   Float,
			truthy:      []any{1.5, -0.25, float32(2.5), 3000000000.5},
			falsy:       []any{1, 2.0, math.Inf(-1), math.NaN(), "1.5"},
		},
		{
			description: "string",
			predicate:   String,
			truthy:      []any{"", "x"},
			falsy:       []any{1, nil, []byte("x")},
		},
		{
			description: "char",
			predicate:   Char,
			truthy:      []any{"a", "é"},
			falsy:       []any{"", "ab", 1, nil},
		},
		{
			description: "null",
			predicate:   Null,
			truthy:      []any{nil, nilSlice, nilMap, (*document.Object)(nil), (*record)(nil), (func())(nil)},
			falsy:       []any{0, "", false, []any{}, document.NewObject()},
		},
		{
			description: "array",
			predicate:   Array,
			truthy:      []any{[]any{}, []int{1}, [2]string{}},
			falsy:       []any{nilSlice, document.NewObject(), map[string]any{}, "ab"},
		},
		{
			description: "object",
			predicate:   Object,
			truthy:      []any{[]any{}, document.NewObject(), &record{}, now, regexp.MustCompile("x")},
			falsy:       []any{nil, (*document.Object)(nil), 1, "x", true},
		},
		{
			description: "plain object",
			predicate:   PlainObject,
			truthy:      []any{document.NewObject(), map[string]any{}, record{}, &record{}},
			falsy:       []any{[]any{}, now, regexp.MustCompile("x"), nil, "x"},
		},
		{
			description: "date",
			predicate:   Date,
			truthy:      []any{now, &now},
			falsy:       []any{(*time.Time)(nil), "2020-01-01", 1},
		},
		{
			description: "regexp",
			predicate:   Regexp,
			truthy:      []any{regexp.MustCompile("^x$")},
			falsy:       []any{(*regexp.Regexp)(nil), "^x$"},
		},
		{
			description: "func",
			predicate:   Func,
			truthy:      []any{func() {}, Func},
			falsy:       []any{(func())(nil), nil, "func"},
		},
		{
			description: "list",
			predicate:   List,
			truthy:      []any{[]any{}, [1]int{}, map[string]any{}, document.NewObject(), make(chan int)},
			falsy:       []any{"abc", nil, nilSlice, record{}, 1},
		},
	}

	for _, testCase := range testCases {
		for _, value := range testCase.truthy {
			assert.True(t, testCase.predicate(value), "%v: %#v", testCase.description, value)
		}
		for _, value := range testCase.falsy {
			assert.False(t, testCase.predicate(value), "%v: %#v", testCase.description, value)
		}
	}
}
