package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized checks all exported fields of a struct pointer and
// returns an error naming the first nil-able field that is still nil.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.New("expected a struct or struct pointer")
	}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("struct field %q is not initialized", t.Field(i).Name)
			}
		default:
			// value fields are always considered initialized
		}
	}

	return nil
}
