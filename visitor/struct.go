package visitor

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *structInfo]()

type (
	structInfo struct {
		xStruct *xunsafe.Struct
		fields  []*structField
	}

	structField struct {
		name   string
		xField *xunsafe.Field
	}
)

// StructVisitor implements Visitor[string, interface{}] for structs, exported fields
// are visited in declaration order under their json (or format) tag name.
type StructVisitor struct {
	value interface{}
	ptr   unsafe.Pointer
	info  *structInfo
}

// StructVisitorOf creates a StructVisitor from any struct value.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	info := structCache.GetOrCreate(structType, func() *structInfo {
		return newStructInfo(structType)
	})
	visitor := &StructVisitor{
		value: value,
		ptr:   xunsafe.AsPointer(value),
		info:  info,
	}
	return visitor.Visit, nil
}

// Visit iterates over struct fields, calling the provided function with each field name and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, field := range w.info.fields {
		continueVisit, err := f(field.name, field.xField.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func newStructInfo(structType reflect.Type) *structInfo {
	xStruct := xunsafe.NewStruct(structType)
	ret := &structInfo{xStruct: xStruct}
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		if !token.IsExported(xField.Name) {
			continue
		}
		name, ignore := fieldName(xField.Name, xField.Tag)
		if ignore {
			continue
		}
		ret.fields = append(ret.fields, &structField{name: name, xField: xField})
	}
	return ret
}

// fieldName resolves field name: json explicit name wins over format name and case format
func fieldName(name string, tag reflect.StructTag) (string, bool) {
	jsonTag, hasJSON := tag.Lookup("json")
	if jsonTag == "-" || tag.Get("internal") == "true" {
		return "", true
	}
	if hasJSON {
		if jsonName, _, _ := strings.Cut(jsonTag, ","); jsonName != "" {
			return jsonName, false
		}
	}
	fTag, err := format.Parse(tag)
	if err != nil || fTag == nil {
		return name, false
	}
	if fTag.Ignore {
		return "", true
	}
	if fTag.Name != "" {
		name = fTag.Name
	}
	if fTag.CaseFormat == "" {
		return name, false
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, text.CaseFormat(fTag.CaseFormat)), false
}
