package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Nothing
// leaks internals except the explicit 500 branch, which mirrors the
// {message, error} body shape clients already parse.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errorz.Validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, errorz.Unauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, errorz.Forbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, errorz.NotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, errorz.Conflict):
		ctx.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "error": err.Error()})
	}
}

// paramID parses a numeric id path parameter.
func paramID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errorz.Validationf("invalid %s", name)
	}
	return uint(id), nil
}
