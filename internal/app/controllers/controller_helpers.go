package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/auth"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// callerFromContext rebuilds the authenticated identity stored by JWTAuth.
// Returns false (and writes a 401) when the route was reached without it.
func callerFromContext(ctx *gin.Context) (auth.Caller, bool) {
	userID, okID := ctx.Get(middleware.ContextUserIDKey)
	email, okEmail := ctx.Get(middleware.ContextEmailKey)
	role, okRole := ctx.Get(middleware.ContextRoleKey)
	if !okID || !okEmail || !okRole {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return auth.Caller{}, false
	}

	id, okID := userID.(int64)
	emailStr, okEmail := email.(string)
	roleStr, okRole := role.(string)
	if !okID || !okEmail || !okRole {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return auth.Caller{}, false
	}

	return auth.Caller{
		ID:    id,
		Email: emailStr,
		Role:  models.RoleName(roleStr),
	}, true
}

// parseIDParam reads a positive int64 path parameter. Returns false (and
// writes a 400) when the value is not a valid identifier.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body. Returns false (and writes a 400) when the
// payload is malformed or fails field validation.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
