package conv

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/visitor"
	ftime "github.com/viant/treewalk/format/time"
)

const objectString = "[object Object]"

// FormatNumber renders number in shortest form, whole numbers without fraction
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToString returns primitive string of a value: sequences join their items with comma,
// mappings and structs render as [object Object], nil as null.
func ToString(value any) string {
	switch actual := value.(type) {
	case nil:
		return "null"
	case string:
		return actual
	case bool:
		return strconv.FormatBool(actual)
	case time.Time:
		return ftime.Format(actual, "")
	case *time.Time:
		if actual == nil {
			return "null"
		}
		return ftime.Format(*actual, "")
	case *document.Object:
		if actual == nil {
			return "null"
		}
		return objectString
	case interface{ String() string }:
		return actual.String()
	}
	if f, ok := AsFloat(value); ok {
		return FormatNumber(f)
	}
	if visitor.IsSequence(value) {
		return joinSequence(value)
	}
	if visitor.IsComposite(value) {
		return objectString
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return "null"
	}
	if rValue.Kind() == reflect.String {
		return rValue.String()
	}
	return objectString
}

func joinSequence(value any) string {
	visit, _ := visitor.Of(value)
	var items []string
	_ = visit(func(_ string, element any) (bool, error) {
		if element == nil {
			items = append(items, "")
		} else {
			items = append(items, ToString(element))
		}
		return true, nil
	})
	return strings.Join(items, ",")
}
