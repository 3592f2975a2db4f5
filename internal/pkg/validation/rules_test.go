package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persona struct {
	Cedula   string `json:"cedula" validate:"required"`
	Nombre   string `json:"nombre,omitempty" validate:"required"`
	Creditos int32  `validate:"gt=0"`
	Interno  string `json:"-" validate:"required"`
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	err := v.Struct(persona{})
	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 3)

	messages := map[string]string{}
	for _, fe := range fieldErrs {
		messages[fe.Field()] = FormatFieldError(fe)
	}
	assert.Equal(t, "el campo 'cedula' es requerido", messages["cedula"])
	assert.Equal(t, "el campo 'nombre' es requerido", messages["nombre"])
	assert.Equal(t, "el campo 'Creditos' debe ser mayor a 0", messages["Creditos"])
}

func TestRegisterOnGinEngine(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
