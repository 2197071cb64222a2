package document

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/francoispqt/gojay"
)

// UnmarshalJSONObject decodes one object entry, a repeated key keeps the last value
func (o *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value, err := decodeJSONValue(dec)
	if err != nil {
		return err
	}
	o.Set(key, value)
	return nil
}

// NKeys returns 0 so that every key is decoded
func (o *Object) NKeys() int {
	return 0
}

// UnmarshalJSONArray decodes one array item
func (a *Array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value, err := decodeJSONValue(dec)
	if err != nil {
		return err
	}
	*a = append(*a, value)
	return nil
}

func decodeJSONValue(dec *gojay.Decoder) (any, error) {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return nil, err
	}
	return decodeJSON(raw)
}

// decodeJSON decodes a JSON value: objects become *Object, arrays []any,
// whole numbers int64 (uint64 or float64 when out of range), other numbers float64.
func decodeJSON(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty json value")
	}
	switch data[0] {
	case '{':
		ret := NewObject()
		if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
			return nil, err
		}
		return ret, nil
	case '[':
		var ret Array
		if err := gojay.UnmarshalJSONArray(data, &ret); err != nil {
			return nil, err
		}
		if ret == nil {
			return []any{}, nil
		}
		return []any(ret), nil
	case '"':
		var text string
		if err := gojay.Unmarshal(data, &text); err != nil {
			return nil, err
		}
		return text, nil
	}
	return jsonLiteral(string(data))
}

func jsonLiteral(literal string) (any, error) {
	switch literal {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if !strings.ContainsAny(literal, ".eE") {
		i, err := strconv.ParseInt(literal, 10, 64)
		if err == nil {
			return i, nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("invalid json value: %s", literal)
		}
		if u, err := strconv.ParseUint(literal, 10, 64); err == nil {
			return u, nil
		}
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid json value: %s", literal)
	}
	return f, nil
}
