package conv

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/treewalk/document"
)

func TestLooseEqual(t *testing.T) {
	obj := document.NewObject(document.Entry{Key: "a", Value: 1})
	other := document.NewObject(document.Entry{Key: "a", Value: 1})
	seq := []any{5}
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	expr := regexp.MustCompile("a")

	var testCases = []struct {
		description string
		a           any
		b           any
		expect      bool
	}{
		{description: "numeric string vs number", a: "5", b: 5, expect: true},
		{description: "number vs numeric string", a: uint64(5), b: "5.0", expect: true},
		{description: "different numeric types", a: int8(3), b: 3.0, expect: true},
		{description: "empty string vs zero", a: "", b: 0, expect: true},
		{description: "blank string vs zero", a: "  ", b: 0, expect: true},
		{description: "hex string", a: "0x1F", b: 31, expect: true},
		{description: "text vs number", a: "abc", b: 0},
		{description: "true vs one", a: true, b: 1, expect: true},
		{description: "true vs numeric string", a: true, b: "1", expect: true},
		{description: "false vs empty string", a: false, b: "", expect: true},
		{description: "true vs two", a: true, b: 2},
		{description: "bools", a: false, b: false, expect: true},
		{description: "nil vs nil", a: nil, b: nil, expect: true},
		{description: "nil vs zero", a: nil, b: 0},
		{description: "nil vs false", a: nil, b: false},
		{description: "nil vs nil object", a: nil, b: (*document.Object)(nil), expect: true},
		{description: "strings", a: "x", b: "x", expect: true},
		{description: "different strings", a: "x", b: "y"},
		{description: "same object", a: obj, b: obj, expect: true},
		{description: "equal content objects", a: obj, b: other},
		{description: "object vs string", a: obj, b: "[object Object]", expect: true},
		{description: "sequence vs number", a: seq, b: 5, expect: true},
		{description: "same sequence", a: seq, b: seq, expect: true},
		{description: "sequence vs string", a: []any{1, "a", nil}, b: "1,a,", expect: true},
		{description: "same date", a: ts, b: ts.In(time.Local), expect: true},
		{description: "date vs number", a: ts, b: ts.UnixMilli()},
		{description: "same regexp", a: expr, b: expr, expect: true},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, LooseEqual(testCase.a, testCase.b), testCase.description)
		assert.Equal(t, testCase.expect, LooseEqual(testCase.b, testCase.a), testCase.description+" (swapped)")
	}
}

func TestStrictEqual(t *testing.T) {
	assert.True(t, StrictEqual(5, uint64(5)))
	assert.False(t, StrictEqual("5", 5))
	assert.False(t, StrictEqual(true, 1))
	assert.True(t, StrictEqual(nil, nil))
}
