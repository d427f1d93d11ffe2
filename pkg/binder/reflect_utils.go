package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct copies values into the fields of the struct v points to,
// using tagName to resolve parameter names. Failures are wrapped in bindErr.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		sf := rt.Field(i)
		name, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}

		fieldValues := values[name]
		if len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, sf.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}

	return nil
}

func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	switch fieldType.Kind() {
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)

	case reflect.Slice:
		if fieldType.Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fieldType)
		}
		slice := reflect.MakeSlice(fieldType, len(values), len(values))
		for i, v := range values {
			slice.Index(i).SetString(v)
		}
		field.Set(slice)
		return nil

	case reflect.String:
		field.SetString(values[0])

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(values[0], 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", values[0])
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(values[0], 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", values[0])
		}
		field.SetUint(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return fmt.Errorf("invalid bool value %q", values[0])
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}
