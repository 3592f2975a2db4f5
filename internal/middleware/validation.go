package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/pkg/validation"
)

// RespondMalformed answers 400 MalformedRequest for a body or parameter that could not be bound.
// Validator failures are listed field by field.
func RespondMalformed(c *gin.Context, err error) {
	respond(c, dto.CategoryMalformedRequest, malformedMessage(err), http.StatusBadRequest)
}

func malformedMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, validation.FormatFieldError(fe))
		}
		return strings.Join(messages, "; ")
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return "El cuerpo de la solicitud no es un JSON válido"
	case errors.As(err, &typeErr):
		return "El campo '" + typeErr.Field + "' tiene un tipo inválido"
	case err == nil:
		return "La solicitud no es válida"
	default:
		return err.Error()
	}
}
