package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents document wire format
type Format string

const (
	//JSON json format
	JSON Format = "json"
	//YAML yaml format
	YAML Format = "yaml"
	//Msgpack msgpack format
	Msgpack Format = "msgpack"
)

// FormatOf returns a format for a format name or a file name
func FormatOf(name string) (Format, error) {
	candidate := strings.ToLower(name)
	if ext := filepath.Ext(candidate); ext != "" {
		candidate = ext[1:]
	}
	switch candidate {
	case "j", "json":
		return JSON, nil
	case "y", "yml", "yaml":
		return YAML, nil
	case "m", "mp", "mpk", "msgpack":
		return Msgpack, nil
	}
	return "", fmt.Errorf("unsupported format: %q", name)
}
