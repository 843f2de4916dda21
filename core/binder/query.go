package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query creates a query parameter binder with strict coercion rules.
//
// Struct tags control the binding:
//   - `query:"name"` binds the field to the parameter "name",
//   - `query:"-"` skips the field,
//   - `default:"v"` supplies a value when the parameter is absent,
//   - a pointer field is optional and stays nil when the parameter is absent.
//
// A field with no default that is not a pointer is required; omitting it fails
// the bind. Coercion is deliberately strict: booleans accept only the literal
// strings "true" and "false", numbers parse in base 10, and slices split a
// comma-separated value with per-element trimming. Any violation produces a
// *ValidationError naming the field and its expected type.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindQuery(v, r.URL.Query())
	}
}

func bindQuery(v any, values url.Values) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: query target", ErrInvalidTarget)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: query target must point to a struct", ErrInvalidTarget)
	}
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		name, skip := paramName(ft)
		if skip {
			continue
		}

		raw, present := values[name]
		if !present || len(raw) == 0 {
			if def, ok := ft.Tag.Lookup("default"); ok {
				if err := setValue(field, ft.Type, def); err != nil {
					return &ValidationError{Field: name, Expected: expectedType(ft.Type), Reason: "invalid default " + strconv.Quote(def)}
				}
				continue
			}
			if ft.Type.Kind() == reflect.Pointer {
				continue // optional, stays nil
			}
			return &ValidationError{Field: name, Expected: expectedType(ft.Type), Reason: "missing required parameter"}
		}

		if err := setValue(field, ft.Type, raw[0]); err != nil {
			return &ValidationError{Field: name, Expected: expectedType(ft.Type), Reason: fmt.Sprintf("malformed value %q", raw[0])}
		}
	}

	return nil
}

// paramName resolves the query parameter name for a struct field. Without a
// tag the lowercased field name is used.
func paramName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("query")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

// setValue coerces a single raw string into the field, allocating through
// pointers for optional fields and splitting comma-separated slices.
func setValue(field reflect.Value, t reflect.Type, raw string) error {
	if t.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(t.Elem()))
		}
		return setValue(field.Elem(), t.Elem(), raw)
	}

	if t.Kind() == reflect.Slice {
		parts := strings.Split(raw, ",")
		slice := reflect.MakeSlice(t, len(parts), len(parts))
		for i, part := range parts {
			if err := setValue(slice.Index(i), t.Elem(), strings.TrimSpace(part)); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		// Only the literal strings are accepted; "1", "on", "yes" are not.
		switch raw {
		case "true":
			field.SetBool(true)
		case "false":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool %q", raw)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid int %q", raw)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint %q", raw)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid float %q", raw)
		}
		field.SetFloat(n)

	default:
		return fmt.Errorf("unsupported type %s", t.Kind())
	}

	return nil
}

// expectedType renders the type a client should have provided, with optional
// pointers stripped since the client never sees them.
func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
