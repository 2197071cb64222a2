package is

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/visitor"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// JSON returns true for text holding a valid JSON value
func JSON(v any) bool {
	s, ok := v.(string)
	return ok && gjson.Valid(s)
}

// Nested returns whether a sequence or mapping, or JSON text holding one,
// has a composite among its own values; ok is false for anything else
func Nested(v any) (result bool, ok bool) {
	if JSON(v) {
		decoded, err := document.Decode([]byte(v.(string)), document.JSON)
		if err != nil {
			return false, false
		}
		v = decoded
	}
	if !Array(v) && !PlainObject(v) {
		return false, false
	}
	visit, _ := visitor.Of(v)
	_ = visit(func(_ string, value any) (bool, error) {
		if Object(value) {
			result = true
		}
		return !result, nil
	})
	return result, true
}

// XML returns whether text is a well formed XML document with a root element, ok is false for non text
func XML(v any) (result bool, ok bool) {
	s, ok := v.(string)
	if !ok {
		return false, false
	}
	decoder := xml.NewDecoder(strings.NewReader(s))
	depth, roots := 0, 0
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return roots == 1 && depth == 0, true
		}
		if err != nil {
			return false, true
		}
		switch actual := token.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(actual)) != "" {
				return false, true
			}
		}
	}
}

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

// HTML returns whether text parsed as an HTML fragment yields at least one element, ok is false for non text
func HTML(v any) (result bool, ok bool) {
	s, ok := v.(string)
	if !ok {
		return false, false
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), fragmentContext)
	if err != nil {
		return false, true
	}
	for _, node := range nodes {
		if node.Type == html.ElementNode {
			return true, true
		}
	}
	return false, true
}
