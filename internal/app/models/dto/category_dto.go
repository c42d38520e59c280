package dto

import "github.com/mertkaya/eduhub/internal/app/models"

// CategoryResponse represents a course category returned by the API
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCategoryResponse maps a category model to its transport representation
func NewCategoryResponse(category *models.CourseCategory) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewCategoryResponseList maps a slice of categories
func NewCategoryResponseList(categories []*models.CourseCategory) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, NewCategoryResponse(category))
	}
	return responses
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateCategoryRequest represents a partial category update. The name is
// the only externally mutable field.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
}

// ApplyTo merges the set fields onto the category.
func (r *UpdateCategoryRequest) ApplyTo(category *models.CourseCategory) {
	if r.Name != nil {
		category.Name = *r.Name
	}
}
