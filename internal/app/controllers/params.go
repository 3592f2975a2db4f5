package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/helpers"
)

// pathID reads a positive id from the path. On failure the 400 response is
// already written and ok is false.
func pathID(ctx *gin.Context, name string) (id int64, ok bool) {
	id, err := helpers.ParseIDParam(ctx, name)
	if err != nil {
		middleware.RespondMalformed(ctx, err)
		return 0, false
	}
	return id, true
}

// queryID reads a required positive id from the query string
func queryID(ctx *gin.Context, name string) (id int64, ok bool) {
	id, err := helpers.ParseIDQuery(ctx, name)
	if err != nil {
		middleware.RespondMalformed(ctx, err)
		return 0, false
	}
	return id, true
}

// queryText reads a required non-blank query parameter
func queryText(ctx *gin.Context, name string) (value string, ok bool) {
	value, err := helpers.RequiredQuery(ctx, name)
	if err != nil {
		middleware.RespondMalformed(ctx, err)
		return "", false
	}
	return value, true
}

// queryRaw reads a required query parameter without trimming it
func queryRaw(ctx *gin.Context, name string) (value string, ok bool) {
	value, err := helpers.RawQuery(ctx, name)
	if err != nil {
		middleware.RespondMalformed(ctx, err)
		return "", false
	}
	return value, true
}

// bindJSON binds the request body into req
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		middleware.RespondMalformed(ctx, err)
		return false
	}
	return true
}
