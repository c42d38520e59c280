package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/services"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// CategoryController handles course category endpoints.
type CategoryController struct {
	categoryService services.ICategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService services.ICategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetAllCategories lists every category
// @Summary List categories
// @Description Retrieves all course categories. Public.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryResponse} "Categories retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coursecategories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCategoryResponseList(categories)))
}

// GetCategoryByID retrieves one category
// @Summary Get category by ID
// @Description Retrieves a single course category. Public.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coursecategories/{id} [get]
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCategoryResponse(category)))
}

// CreateCategory creates a category
// @Summary Create a category
// @Description Creates a course category with a unique name. Admin only.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} dto.APIResponse{data=dto.CategoryResponse} "Category created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coursecategories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCategoryResponse(category)))
}

// UpdateCategory renames a category
// @Summary Update a category
// @Description Merges the provided fields into a category. Admin only.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coursecategories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.categoryService.UpdateCategory(ctx, caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCategoryResponse(category)))
}

// DeleteCategory removes a category
// @Summary Delete a category
// @Description Removes a category that has no courses. Admin only.
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or category still has courses"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coursecategories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
