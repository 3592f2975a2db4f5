package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/pkg/apperrors"
	"github.com/yigit/academico/internal/pkg/logger"
)

const internalErrorMessage = "Ocurrió un error interno en el servidor"

// --- Central Error Handling ---

// HandleAPIError maps a service error to its status and error body.
// NotFound -> 404, BusinessRule -> 400, anything else -> 500 with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		respond(c, dto.CategoryNotFound, apperrors.Message(err), http.StatusNotFound)
	case apperrors.IsBusinessRule(err):
		respond(c, dto.CategoryBusinessRule, apperrors.Message(err), http.StatusBadRequest)
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
		respond(c, dto.CategoryInternal, internalErrorMessage, http.StatusInternalServerError)
	}
}

// NoRoute answers requests for unknown paths
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, dto.CategoryNotFound, "La ruta "+c.Request.URL.Path+" no existe", http.StatusNotFound)
	}
}

// NoMethod answers requests whose path exists under another method.
// The engine needs HandleMethodNotAllowed enabled for this to run.
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, dto.CategoryMethodNotAllowed,
			"El método "+c.Request.Method+" no está permitido en "+c.Request.URL.Path,
			http.StatusMethodNotAllowed)
	}
}

// Recovery turns a panic in a handler into a 500 error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Recovered from panic")
		respond(c, dto.CategoryInternal, internalErrorMessage, http.StatusInternalServerError)
	})
}

func respond(c *gin.Context, category dto.ErrorCategory, message string, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(category, message, status))
}
