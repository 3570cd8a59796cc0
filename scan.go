package yopt

import (
	"fmt"
	"reflect"
	"strconv"
)

// Scan converts the value of an option to the type pointed to by target. The
// target must be a non-nil pointer to a string, a bool, an integer or a float.
// Booleans accept the literals of Bool, and a flag sets a bool target to true.
// Integers are base 10. The error wraps ErrMissingOption if the option was not
// specified and ErrUnsupportedTarget if target is not suitable.
func (o *Options[C]) Scan(key string, target interface{}) error {
	v, ok := o.Get(key)
	if !ok {
		return fmt.Errorf(`option "%s": %w`, key, ErrMissingOption)
	}
	s, err := narrow(o.config.converter, v)
	if err != nil {
		return fmt.Errorf(`option "%s": %w`, key, err)
	}
	if err := typescan(s, target); err != nil {
		return fmt.Errorf(`option "%s": %w`, key, err)
	}
	return nil
}

// typescan converts the value to the type pointed to by the target.
func typescan(value string, target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf(`target for value "%s" is not a pointer: %w`, value, ErrUnsupportedTarget)
	}
	var (
		b   bool
		i   int64
		u   uint64
		f   float64
		err error
	)
	v := rv.Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		if value == "" {
			v.SetBool(true)
		} else if b, err = parseBool(value); err == nil {
			v.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, err = strconv.ParseInt(value, 10, v.Type().Bits()); err == nil {
			v.SetInt(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u, err = strconv.ParseUint(value, 10, v.Type().Bits()); err == nil {
			v.SetUint(u)
		}
	case reflect.Float32, reflect.Float64:
		if f, err = strconv.ParseFloat(value, v.Type().Bits()); err == nil {
			v.SetFloat(f)
		}
	default:
		err = fmt.Errorf(`target for value "%s" has type %v: %w`, value, v.Type(), ErrUnsupportedTarget)
	}
	return err
}
