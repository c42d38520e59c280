package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/services"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// UserController handles account management endpoints.
type UserController struct {
	userService services.IUserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.IUserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers lists every account
// @Summary List accounts
// @Description Retrieves all accounts. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Accounts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	users, err := c.userService.GetAllUsers(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponseList(users)))
}

// GetUserByID retrieves one account
// @Summary Get account by ID
// @Description Retrieves a single account. Admins can read anyone, others only themselves.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// GetProfile returns the caller's own account
// @Summary Get own profile
// @Description Retrieves the account of the authenticated caller
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, caller, caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// GetUsersByRole lists accounts holding a role
// @Summary List accounts by role
// @Description Retrieves all accounts with the given role. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param roleName path string true "Role name" Enums(ADMIN, INSTRUCTOR, STUDENT)
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Accounts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/by-role/{roleName} [get]
func (c *UserController) GetUsersByRole(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	users, err := c.userService.GetUsersByRole(ctx, caller, ctx.Param("roleName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponseList(users)))
}

// CreateUser creates an account
// @Summary Create an account
// @Description Creates an account with any role. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Account data"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.CreateUser(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// UpdateUser merges changes into an account
// @Summary Update an account
// @Description Merges the provided fields into an account. Absent fields keep their values.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx, caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// DeleteUser removes an account
// @Summary Delete an account
// @Description Removes an account. Admin only.
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "Account deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
