package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/services"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// CourseController handles course endpoints.
type CourseController struct {
	courseService services.ICourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService services.ICourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses lists every course
// @Summary List courses
// @Description Retrieves all courses with category and instructor attached. Public.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponseList(courses)))
}

// GetCourseByID retrieves one course
// @Summary Get course by ID
// @Description Retrieves a single course with category and instructor attached. Public.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// GetCoursesByCategory lists courses in a category
// @Summary List courses by category
// @Description Retrieves all courses belonging to a category. Public.
// @Tags courses
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/by-category/{id} [get]
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByCategory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponseList(courses)))
}

// GetCoursesByInstructor lists courses taught by a user
// @Summary List courses by instructor
// @Description Retrieves all courses taught by the given user. Public.
// @Tags courses
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/by-instructor/{id} [get]
func (c *CourseController) GetCoursesByInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByInstructor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponseList(courses)))
}

// GetMyCourses lists the caller's courses
// @Summary List own courses
// @Description Retrieves the courses taught by the authenticated instructor
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/my-courses [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	courses, err := c.courseService.GetMyCourses(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponseList(courses)))
}

// CreateCourse creates a course
// @Summary Create a course
// @Description Creates a course. Instructors always become the instructor of the courses they create.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Category or instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// UpdateCourse merges changes into a course
// @Summary Update a course
// @Description Merges the provided fields into a course. Admins may update any course, instructors only their own.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Description Removes a course. Admin only.
// @Tags courses
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
