package validators

import (
	"net/http"
	"reflect"
	"strings"

	pkgerrors "github.com/ers220/component-compass/pkg/errors"
)

// DecodeForm binds application/x-www-form-urlencoded fields to string struct
// members tagged `form:"name"`, then runs the same validator as JSON bodies.
func DecodeForm(r *http.Request, dest any) error {
	if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return pkgerrors.New(pkgerrors.CodeInternal, "form destination must be a struct pointer")
	}

	elem := v.Elem()
	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		if field.Type.Kind() != reflect.String {
			continue
		}
		if value := r.PostFormValue(tag); value != "" {
			elem.Field(i).SetString(value)
		}
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}
