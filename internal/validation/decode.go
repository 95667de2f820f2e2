package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
)

// FromDecodeError converts a JSON decoding error into violations located in
// the request body. An empty body is reported as a missing field. target is
// the value being decoded into and is used to map type errors onto wire
// names.
func FromDecodeError(err error, target any, prefix ...string) Violations {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return Violations{Missing(LocBody, prefix...)}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := append([]string{}, prefix...)
		if typeErr.Field != "" {
			path = append(path, decodePath(reflect.TypeOf(target), typeErr.Field)...)
		}
		typ, msg := typeMismatch(typeErr.Type)
		return Violations{NewViolation(LocBody, path, typ, msg, nil)}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		v := NewViolation(LocBody, prefix, TypeJSONDecode, MsgJSONDecode, nil)
		v.Ctx = map[string]any{"pos": syntaxErr.Offset}
		return Violations{v}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return Violations{NewViolation(LocBody, prefix, TypeJSONDecode, MsgJSONDecode, nil)}
	}

	return Violations{NewViolation(LocBody, prefix, TypeGeneric, "request body could not be decoded", nil)}
}

// decodePath maps the dotted field reported by encoding/json onto wire names.
// Embedded struct names appear in that field but not on the wire, so they are
// skipped.
func decodePath(root reflect.Type, field string) []string {
	segments := strings.Split(field, ".")
	path := make([]string, 0, len(segments))
	current := indirectType(root)
	for _, seg := range segments {
		if current == nil || current.Kind() != reflect.Struct {
			path = append(path, seg)
			current = nil
			continue
		}

		if fld, ok := current.FieldByName(seg); ok && fld.Anonymous && fld.Tag.Get("json") == "" {
			current = indirectType(fld.Type)
			continue
		}

		path = append(path, seg)
		fld, ok := fieldByWireName(current, seg)
		if !ok {
			current = nil
			continue
		}
		current = indirectType(fld.Type)
		switch current.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			current = indirectType(current.Elem())
		}
	}
	return path
}

// fieldByWireName finds the field serialized as name, including fields
// promoted from untagged embedded structs.
func fieldByWireName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if fld.Anonymous && fld.Tag.Get("json") == "" {
			if inner := indirectType(fld.Type); inner.Kind() == reflect.Struct {
				if found, ok := fieldByWireName(inner, name); ok {
					return found, true
				}
			}
			continue
		}
		if fld.IsExported() && wireName(fld) == name {
			return fld, true
		}
	}
	return reflect.StructField{}, false
}

func typeMismatch(t reflect.Type) (string, string) {
	t = indirectType(t)
	if t == nil {
		return TypeGeneric, "value has the wrong type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger, MsgInteger
	case reflect.Float32, reflect.Float64:
		return TypeFloat, MsgFloat
	case reflect.String:
		return TypeString, MsgString
	case reflect.Bool:
		return TypeBool, MsgBool
	case reflect.Struct, reflect.Map:
		return TypeDict, MsgDict
	default:
		return TypeGeneric, "value has the wrong type"
	}
}
