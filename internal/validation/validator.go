package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/people-api/internal/domain"
)

const (
	// TagPaymentCard is the struct tag that checks domain.CardNumber values.
	TagPaymentCard = "payment_card"
	// TagHairColor is the struct tag that checks domain.HairColor values.
	TagHairColor = "hair_color"
)

// Validator runs struct-tag validation and converts failures into Violations.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the directory's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names rather than Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return wireName(fld)
	})

	custom := map[string]validator.Func{
		TagPaymentCard: validatePaymentCard,
		TagHairColor:   validateHairColor,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// ALLOW-PANIC: registration only fails on programmer error
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return &Validator{validate: v}
}

// Struct validates s and returns every violation found. Each violation is
// located at loc, then prefix, then the failing field's path inside s.
func (v *Validator) Struct(loc Location, prefix []string, s any) Violations {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{NewViolation(loc, prefix, TypeGeneric, err.Error(), nil)}
	}

	root := indirectType(reflect.TypeOf(s))
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := append(append([]string{}, prefix...), fieldPath(root, fe.StructNamespace())...)
		out = append(out, convert(loc, path, fe))
	}
	return out
}

func validatePaymentCard(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return domain.CardNumber(field.String()).Check() == nil
}

func validateHairColor(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return domain.HairColor(field.String()).Valid()
}

func convert(loc Location, path []string, fe validator.FieldError) Violation {
	input := safeInput(fe.Value())
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return Violation{Loc: buildLoc(loc, path), Msg: MsgMissing, Type: TypeMissing}
	case "min":
		if isString {
			return bounded(loc, path, TypeMinLength, msgMinLengthFmt, param, input)
		}
		return bounded(loc, path, TypeNotGE, msgGreaterEqFmt, param, input)
	case "max":
		if isString {
			return bounded(loc, path, TypeMaxLength, msgMaxLengthFmt, param, input)
		}
		return bounded(loc, path, TypeNotLE, msgLessEqFmt, param, input)
	case "gt":
		return bounded(loc, path, TypeNotGT, msgGreaterFmt, param, input)
	case "gte":
		return bounded(loc, path, TypeNotGE, msgGreaterEqFmt, param, input)
	case "lt":
		return bounded(loc, path, TypeNotLT, msgLessFmt, param, input)
	case "lte":
		return bounded(loc, path, TypeNotLE, msgLessEqFmt, param, input)
	case "oneof":
		return enumViolation(loc, path, strings.Fields(param), input)
	case TagHairColor:
		colors := domain.HairColors()
		values := make([]string, len(colors))
		for i, c := range colors {
			values[i] = string(c)
		}
		return enumViolation(loc, path, values, input)
	case "email":
		return NewViolation(loc, path, TypeEmail, MsgEmail, input)
	case TagPaymentCard:
		return cardViolation(loc, path, fe.Value(), input)
	default:
		return NewViolation(loc, path, TypeGeneric, fmt.Sprintf(msgGenericRuleFm, fe.Tag()), input)
	}
}

func bounded(loc Location, path []string, typ, format, param string, input any) Violation {
	return Violation{
		Loc:   buildLoc(loc, path),
		Msg:   fmt.Sprintf(format, param),
		Type:  typ,
		Ctx:   map[string]any{"limit_value": limitValue(param)},
		Input: input,
	}
}

func enumViolation(loc Location, path []string, values []string, input any) Violation {
	quoted := make([]string, len(values))
	for i, s := range values {
		quoted[i] = "'" + s + "'"
	}
	return Violation{
		Loc:   buildLoc(loc, path),
		Msg:   msgEnumPrefix + strings.Join(quoted, ", "),
		Type:  TypeEnum,
		Ctx:   map[string]any{"enum_values": values},
		Input: input,
	}
}

func cardViolation(loc Location, path []string, raw any, input any) Violation {
	var number domain.CardNumber
	switch n := raw.(type) {
	case domain.CardNumber:
		number = n
	case string:
		number = domain.CardNumber(n)
	}

	switch err := number.Check(); {
	case errors.Is(err, domain.ErrCardNotDigits):
		return NewViolation(loc, path, TypeCardDigits, MsgCardDigits, input)
	case errors.Is(err, domain.ErrCardLuhn):
		return NewViolation(loc, path, TypeCardLuhn, MsgCardLuhn, input)
	default:
		return NewViolation(loc, path, TypeCardLength, MsgCardLength, input)
	}
}

// safeInput masks values that must not be echoed back.
func safeInput(v any) any {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}

	switch s := v.(type) {
	case domain.SecretString:
		return s.String()
	case domain.CardNumber:
		return s.Masked()
	default:
		return v
	}
}

func limitValue(param string) any {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(param, 64); err == nil {
		return f
	}
	return param
}

// wireName returns the JSON name of a field, or "" for embedded structs so
// they do not show up in paths.
func wireName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "-"
	}
	if name != "" {
		return name
	}
	return fld.Name
}

// fieldPath turns a validator struct namespace such as
// "UpdatePersonBody.Person.BasePerson.FirstName" into wire names
// ("person", "first_name"), dropping the root type and embedded structs.
func fieldPath(root reflect.Type, structNS string) []string {
	segments := strings.Split(structNS, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}

	path := make([]string, 0, len(segments))
	current := root
	for _, seg := range segments {
		name, index, hasIndex := strings.Cut(seg, "[")

		if current == nil || current.Kind() != reflect.Struct {
			path = append(path, name)
			current = nil
			continue
		}

		fld, ok := current.FieldByName(name)
		if !ok {
			path = append(path, name)
			current = nil
			continue
		}

		if !fld.Anonymous || fld.Tag.Get("json") != "" {
			path = append(path, wireName(fld))
		}
		current = indirectType(fld.Type)

		if hasIndex {
			path = append(path, strings.TrimSuffix(index, "]"))
			if current.Kind() == reflect.Slice || current.Kind() == reflect.Array || current.Kind() == reflect.Map {
				current = indirectType(current.Elem())
			}
		}
	}
	return path
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
