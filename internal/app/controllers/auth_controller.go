package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/services"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// AuthController handles registration and login.
type AuthController struct {
	authService services.IAuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles account self-registration
// @Summary Register a new account
// @Description Creates a STUDENT or INSTRUCTOR account and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Registration failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(token))
}

// Login handles credential verification
// @Summary Log in
// @Description Verifies email and password and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token))
}
