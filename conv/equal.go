package conv

import (
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/viant/treewalk/document"
	"github.com/viant/treewalk/visitor"
)

type kind int

const (
	nullKind kind = iota
	boolKind
	numberKind
	stringKind
	dateKind
	objectKind
)

func kindOf(value any) kind {
	switch actual := value.(type) {
	case nil:
		return nullKind
	case bool:
		return boolKind
	case string:
		return stringKind
	case time.Time:
		return dateKind
	case *time.Time:
		if actual == nil {
			return nullKind
		}
		return dateKind
	case *document.Object:
		if actual == nil {
			return nullKind
		}
		return objectKind
	case *regexp.Regexp:
		if actual == nil {
			return nullKind
		}
		return objectKind
	}
	if _, ok := AsFloat(value); ok {
		return numberKind
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rValue.IsNil() {
			return nullKind
		}
	case reflect.Bool:
		return boolKind
	case reflect.String:
		return stringKind
	}
	return objectKind
}

// LooseEqual compares two values with coercion:
// numbers compare by value across Go numeric types; a string compared with a
// number is converted to a number ("5" equals 5, "" equals 0); a boolean
// compared with a non-boolean is converted to 0 or 1 first; nil equals only nil;
// dates and composites compared with strings or numbers use their primitive
// string; two composites are equal only when they are the same reference.
func LooseEqual(a, b any) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka == kb {
		return strictEqual(ka, a, b)
	}
	if ka == nullKind || kb == nullKind {
		return false
	}
	switch {
	case ka == boolKind:
		return LooseEqual(ToNumber(normalizeBool(a)), b)
	case kb == boolKind:
		return LooseEqual(a, ToNumber(normalizeBool(b)))
	case ka == numberKind && kb == stringKind:
		return ToNumber(a) == ToNumber(normalizeString(b))
	case ka == stringKind && kb == numberKind:
		return ToNumber(normalizeString(a)) == ToNumber(b)
	case (ka == objectKind || ka == dateKind) && (kb == stringKind || kb == numberKind):
		return LooseEqual(ToString(a), b)
	case (kb == objectKind || kb == dateKind) && (ka == stringKind || ka == numberKind):
		return LooseEqual(a, ToString(b))
	}
	return false
}

// StrictEqual compares two values without coercion, numbers of different Go types
// with the same value are still equal.
func StrictEqual(a, b any) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	return strictEqual(ka, a, b)
}

func strictEqual(k kind, a, b any) bool {
	switch k {
	case nullKind:
		return true
	case boolKind:
		return normalizeBool(a) == normalizeBool(b)
	case numberKind:
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		return fa == fb && !math.IsNaN(fa)
	case stringKind:
		return normalizeString(a) == normalizeString(b)
	case dateKind:
		return asTime(a).Equal(asTime(b))
	}
	return sameReference(a, b)
}

func sameReference(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if !visitor.IsComposite(a) && ra.Type().Comparable() {
		return a == b
	}
	return false
}

func normalizeBool(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return reflect.ValueOf(value).Bool()
}

func normalizeString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return reflect.ValueOf(value).String()
}

func asTime(value any) time.Time {
	switch actual := value.(type) {
	case time.Time:
		return actual
	case *time.Time:
		return *actual
	}
	return time.Time{}
}
