package console

import (
	"fmt"
	"reflect"

	"github.com/pitabwire/fabconsole/model"
)

const paramTag = "param"

// toParams converts an options struct (or a pointer to one) into
// CallParameters. A nil pointer yields empty parameters.
func toParams(opts any) (model.CallParameters, error) {
	var params model.CallParameters
	if opts == nil {
		return params, nil
	}
	rv := reflect.ValueOf(opts)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return params, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return params, fmt.Errorf("console: options must be a struct, got %T", opts)
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if sf.Name == "Headers" {
			if h, ok := fv.Interface().(map[string]string); ok && len(h) > 0 {
				params.Headers = h
			}
			continue
		}

		name := sf.Tag.Get(paramTag)
		if name == "" || name == "-" || omitted(fv) {
			continue
		}
		if params.Fields == nil {
			params.Fields = make(map[string]any)
		}
		params.Fields[name] = fv.Interface()
	}
	return params, nil
}

// omitted reports whether fv is unset: nil pointers, slices, maps and
// interfaces, or an empty string.
func omitted(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return fv.IsNil()
	case reflect.String:
		return fv.Len() == 0
	}
	return false
}
