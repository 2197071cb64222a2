package treewalk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treewalk/document"
)

func TestKeys(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		recursive   bool
		expect      []string
	}{
		{
			description: "shallow",
			input:       `{"a":{"b":1},"c":[1,2]}`,
			expect:      []string{"a", "c"},
		},
		{
			description: "recursive",
			input:       `{"a":{"b":1},"c":[1,{"d":2}]}`,
			recursive:   true,
			expect:      []string{"a", "b", "c", "0", "1", "d"},
		},
		{
			description: "sequence root",
			input:       `[{"a":1},2]`,
			expect:      []string{"0", "1"},
		},
		{
			description: "empty",
			input:       `{}`,
			recursive:   true,
			expect:      []string{},
		},
	}

	for _, testCase := range testCases {
		actual, err := Keys(decode(t, testCase.input), testCase.recursive)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestKeys_MatchWalk(t *testing.T) {
	root := decode(t, `{"a":{"b":{"c":[1,{"d":null}]}},"e":"x"}`)
	var walked []string
	Walk(root, func(key string, value any) {
		walked = append(walked, key)
	}, nil)
	keys, err := Keys(root, true)
	require.NoError(t, err)
	assert.Equal(t, walked, keys)
}

func TestValues(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		recursive   bool
		expect      string
	}{
		{
			description: "shallow",
			input:       `{"a":{"b":1},"c":"x"}`,
			expect:      `[{"b":1},"x"]`,
		},
		{
			description: "recursive collects leaves",
			input:       `{"a":{"b":1},"c":[true,{"d":null}],"e":"x"}`,
			recursive:   true,
			expect:      `[1,true,null,"x"]`,
		},
	}

	for _, testCase := range testCases {
		actual, err := Values(decode(t, testCase.input), testCase.recursive)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, encode(t, actual), testCase.description)
	}
}

func TestKeysValues_SameLength(t *testing.T) {
	for _, input := range []string{`{}`, `[]`, `{"a":1,"b":{"c":2}}`, `[1,[2,3],{"x":4}]`} {
		root := decode(t, input)
		keys, err := Keys(root, false)
		require.NoError(t, err)
		values, err := Values(root, false)
		require.NoError(t, err)
		assert.Equal(t, len(keys), len(values), input)
	}
}

func TestExtract_NotApplicable(t *testing.T) {
	for _, input := range []any{5, "text", nil, true, (*document.Object)(nil)} {
		_, err := Keys(input, false)
		assert.ErrorIs(t, err, ErrNotApplicable)
		_, err = Values(input, true)
		assert.ErrorIs(t, err, ErrNotApplicable)
		_, err = Flatten(input)
		assert.ErrorIs(t, err, ErrNotApplicable)
		_, err = Highest(input)
		assert.ErrorIs(t, err, ErrNotApplicable)
		_, err = Lowest(input)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
}

func TestFlatten(t *testing.T) {
	root := decode(t, `{"a":{"b":1,"c":{"b":2}}}`)
	flat, err := Flatten(root)
	require.NoError(t, err)
	b, ok := flat.Get("b")
	require.True(t, ok)
	assert.EqualValues(t, 2, b)
	assert.Equal(t, []string{"a", "b", "c"}, flat.Keys())

	again, err := Flatten(flat)
	require.NoError(t, err)
	assert.Equal(t, flat, again)
}

func TestHighestLowest(t *testing.T) {
	var testCases = []struct {
		description   string
		input         string
		expectHighest float64
		expectLowest  float64
	}{
		{
			description:   "nested numbers",
			input:         `{"a":1,"b":{"c":5,"d":"x"}}`,
			expectHighest: 5,
			expectLowest:  1,
		},
		{
			description:   "numeric text ignored",
			input:         `{"a":"100","b":[-2.5,3]}`,
			expectHighest: 3,
			expectLowest:  -2.5,
		},
		{
			description:   "no numbers",
			input:         `{}`,
			expectHighest: math.Inf(-1),
			expectLowest:  math.Inf(1),
		},
	}

	for _, testCase := range testCases {
		root := decode(t, testCase.input)
		highest, err := Highest(root)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectHighest, highest, testCase.description)
		lowest, err := Lowest(root)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectLowest, lowest, testCase.description)
	}
}
