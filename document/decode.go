package document

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Decode decodes data into a node tree: mappings become *Object, sequences []any.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case JSON:
		value, err := decodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %v document: %w", format, err)
		}
		return value, nil
	case YAML:
		var value any
		if err := yaml.UnmarshalWithOptions(data, &value, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("failed to decode %v document: %w", format, err)
		}
		return fromYAML(value), nil
	case Msgpack:
		return decodeMsgpack(data)
	}
	return nil, fmt.Errorf("unsupported format: %q", format)
}

// DecodeScalar decodes a command line style literal, so that 7 is numeric and true boolean.
// Text that does not decode is returned as is.
func DecodeScalar(text string) any {
	var value any
	if err := yaml.Unmarshal([]byte(text), &value); err != nil || value == nil {
		return text
	}
	return fromYAML(value)
}

func fromYAML(value any) any {
	switch actual := value.(type) {
	case yaml.MapSlice:
		ret := NewObject()
		for _, item := range actual {
			ret.Set(keyString(item.Key), fromYAML(item.Value))
		}
		return ret
	case map[string]any:
		ret := NewObject()
		for _, key := range sortedKeys(actual) {
			ret.Set(key, fromYAML(actual[key]))
		}
		return ret
	case []any:
		ret := make([]any, len(actual))
		for i, item := range actual {
			ret[i] = fromYAML(item)
		}
		return ret
	}
	return value
}

func keyString(key any) string {
	switch actual := key.(type) {
	case string:
		return actual
	case nil:
		return "null"
	}
	return fmt.Sprint(key)
}
