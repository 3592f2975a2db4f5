package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register configures gin's validator engine. It is safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		RegisterOn(engine)
	})
	return err
}

// RegisterOn makes field errors report the JSON name the client sent
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		return field.Name
	}
	// "-" makes the validator skip the field
	return name
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("el campo '%s' es requerido", e.Field())
	case "min", "gte":
		return fmt.Sprintf("el campo '%s' debe ser mayor o igual a %s", e.Field(), e.Param())
	case "max", "lte":
		return fmt.Sprintf("el campo '%s' debe ser menor o igual a %s", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("el campo '%s' debe ser mayor a %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("el campo '%s' no es válido (%s)", e.Field(), e.Tag())
	}
}
