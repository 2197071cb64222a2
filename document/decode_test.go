package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDecode(t *testing.T) {
	var testCases = []struct {
		description string
		format      Format
		input       string
		expectKeys  []string
		expectJSON  string
	}{
		{
			description: "json keeps key order",
			format:      JSON,
			input:       `{"z":1,"a":{"y":[1,2,{"b":true}],"c":null},"m":"x"}`,
			expectKeys:  []string{"z", "a", "m"},
			expectJSON:  `{"z":1,"a":{"y":[1,2,{"b":true}],"c":null},"m":"x"}`,
		},
		{
			description: "yaml keeps key order",
			format:      YAML,
			input:       "b: 1\na:\n  - x\n  - 2.5\n",
			expectKeys:  []string{"b", "a"},
			expectJSON:  `{"b":1,"a":["x",2.5]}`,
		},
	}

	for _, testCase := range testCases {
		value, err := Decode([]byte(testCase.input), testCase.format)
		require.Nil(t, err, testCase.description)
		obj, ok := value.(*Object)
		require.True(t, ok, testCase.description)
		assert.Equal(t, testCase.expectKeys, obj.Keys(), testCase.description)
		data, err := EncodeJSON(obj)
		require.Nil(t, err, testCase.description)
		assert.JSONEq(t, testCase.expectJSON, string(data), testCase.description)
		assert.Equal(t, testCase.expectJSON, string(data), testCase.description)
	}
}

func TestDecode_JSONValues(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		key         string
		expect      any
		expectKeys  []string
	}{
		{description: "whole number", input: `{"n": -7}`, key: "n", expect: int64(-7), expectKeys: []string{"n"}},
		{description: "fraction", input: `{"n": 2.5e1}`, key: "n", expect: 25.0, expectKeys: []string{"n"}},
		{description: "beyond int64", input: `{"n": 18446744073709551615}`, key: "n", expect: uint64(18446744073709551615), expectKeys: []string{"n"}},
		{description: "beyond uint64", input: `{"big": 12345678901234567890123}`, key: "big", expect: 1.2345678901234568e22, expectKeys: []string{"big"}},
		{description: "repeated key keeps last value", input: `{"a":1,"b":true,"a":2}`, key: "a", expect: int64(2), expectKeys: []string{"a", "b"}},
		{description: "escaped text", input: `{"s":"a\"b\u00e9"}`, key: "s", expect: "a\"bé", expectKeys: []string{"s"}},
		{description: "null", input: `{"z":null}`, key: "z", expect: nil, expectKeys: []string{"z"}},
	}

	for _, testCase := range testCases {
		value, err := Decode([]byte(testCase.input), JSON)
		require.Nil(t, err, testCase.description)
		obj, ok := value.(*Object)
		require.True(t, ok, testCase.description)
		assert.Equal(t, testCase.expectKeys, obj.Keys(), testCase.description)
		actual, has := obj.Get(testCase.key)
		assert.True(t, has, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestDecode_JSONRoot(t *testing.T) {
	value, err := Decode([]byte(` [1, "x", [], {}] `), JSON)
	require.Nil(t, err)
	items, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)
	assert.Equal(t, int64(1), items[0])
	assert.Equal(t, "x", items[1])
	assert.Equal(t, []any{}, items[2])
	assert.Equal(t, 0, items[3].(*Object).Len())

	value, err = Decode([]byte(`3`), JSON)
	require.Nil(t, err)
	assert.Equal(t, int64(3), value)

	_, err = Decode([]byte(`{"a":}`), JSON)
	assert.NotNil(t, err)
	_, err = Decode([]byte(``), JSON)
	assert.NotNil(t, err)
}

func TestDecode_Msgpack(t *testing.T) {
	source := NewObject(
		Entry{Key: "z", Value: 1},
		Entry{Key: "a", Value: NewObject(Entry{Key: "c", Value: "x"}, Entry{Key: "b", Value: []any{1, 2}})},
	)
	data, err := EncodeMsgpack(source)
	require.Nil(t, err)
	value, err := Decode(data, Msgpack)
	require.Nil(t, err)
	obj, ok := value.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a"}, obj.Keys())
	nested, _ := obj.Get("a")
	assert.Equal(t, []string{"c", "b"}, nested.(*Object).Keys())

	decoded := &Object{}
	require.Nil(t, msgpack.Unmarshal(data, decoded))
	assert.Equal(t, []string{"z", "a"}, decoded.Keys())
}

func TestDecodeScalar(t *testing.T) {
	assert.EqualValues(t, 7, DecodeScalar("7"))
	assert.Equal(t, true, DecodeScalar("true"))
	assert.Equal(t, "abc", DecodeScalar("abc"))
	assert.Equal(t, "", DecodeScalar(""))
}

func TestFormatOf(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      Format
		hasError    bool
	}{
		{description: "json file", name: "data/doc.json", expect: JSON},
		{description: "yml file", name: "doc.YML", expect: YAML},
		{description: "msgpack name", name: "m", expect: Msgpack},
		{description: "unknown", name: "doc.txt", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := FormatOf(testCase.name)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
