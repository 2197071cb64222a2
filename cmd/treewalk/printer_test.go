package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treewalk"
	"github.com/viant/treewalk/document"
)

func TestInputFormat(t *testing.T) {
	var testCases = []struct {
		description string
		config      *MainConfig
		path        string
		expect      document.Format
	}{
		{description: "default", config: &MainConfig{}, path: "-", expect: document.YAML},
		{description: "json flag", config: &MainConfig{J: true}, path: "doc.yaml", expect: document.JSON},
		{description: "msgpack flag", config: &MainConfig{M: true}, path: "-", expect: document.Msgpack},
		{description: "extension", config: &MainConfig{}, path: "testdata/doc.json", expect: document.JSON},
		{description: "msgpack extension", config: &MainConfig{}, path: "doc.mpk", expect: document.Msgpack},
		{description: "unknown extension", config: &MainConfig{}, path: "doc.txt", expect: document.YAML},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.config.inputFormat(testCase.path), testCase.description)
	}
}

func TestDecodeInput(t *testing.T) {
	doc, err := decodeInput(strings.NewReader("b: 1\na:\n  c: [x, 2]\n"), document.YAML)
	require.NoError(t, err)
	keys, err := treewalk.Keys(doc, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "0", "1"}, keys)

	data, err := document.EncodeMsgpack(doc)
	require.NoError(t, err)
	decoded, err := decodeInput(bytes.NewReader(data), document.Msgpack)
	require.NoError(t, err)
	expect, err := document.EncodeJSON(doc)
	require.NoError(t, err)
	actual, err := document.EncodeJSON(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(expect), string(actual))
	assert.Equal(t, `{"b":1,"a":{"c":["x",2]}}`, string(actual))
}

func TestPrinter(t *testing.T) {
	buffer := new(bytes.Buffer)
	p := newPrinter(buffer, false)
	require.NoError(t, p.printPaths("a.b", "c"))
	require.NoError(t, p.printValue([]string{"x", "y"}))
	require.NoError(t, p.printText("number"))
	assert.Equal(t, "a.b\nc\n[\"x\",\"y\"]\nnumber\n", buffer.String())

	buffer.Reset()
	p = newPrinter(buffer, true)
	require.NoError(t, p.printPaths("a.b"))
	assert.Contains(t, buffer.String(), "\x1b[")
	assert.Contains(t, buffer.String(), "a.b")
}

func TestColorize(t *testing.T) {
	assert.True(t, (&MainConfig{Color: true}).colorize(new(bytes.Buffer)))
	assert.False(t, (&MainConfig{}).colorize(new(bytes.Buffer)))
}

func TestNewLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	newLogger(false, buffer).Debug("hidden")
	assert.Empty(t, buffer.String())
	newLogger(true, buffer).Debug("shown", "path", "doc.json")
	assert.Contains(t, buffer.String(), "msg=shown")
	assert.Contains(t, buffer.String(), "path=doc.json")
}
