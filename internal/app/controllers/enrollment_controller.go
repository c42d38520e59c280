package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/services"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// EnrollmentController handles enrollment endpoints.
type EnrollmentController struct {
	enrollmentService services.IEnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController.
func NewEnrollmentController(enrollmentService services.IEnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// GetAllEnrollments lists every enrollment
// @Summary List enrollments
// @Description Retrieves all enrollments. Admin only.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponseList(enrollments)))
}

// GetEnrollmentByID retrieves one enrollment
// @Summary Get enrollment by ID
// @Description Retrieves a single enrollment. Admins see all, students their own, instructors those of their courses.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// GetEnrollmentsByUser lists enrollments of an account
// @Summary List enrollments by user
// @Description Retrieves all enrollments of an account. Admins can query anyone, others only themselves.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/by-user/{id} [get]
func (c *EnrollmentController) GetEnrollmentsByUser(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByUser(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponseList(enrollments)))
}

// GetEnrollmentsByCourse lists enrollments of a course
// @Summary List enrollments by course
// @Description Retrieves all enrollments of a course. Admins can query any course, instructors only their own.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/by-course/{id} [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponseList(enrollments)))
}

// GetMyEnrollments lists the caller's enrollments
// @Summary List own enrollments
// @Description Retrieves the enrollments of the authenticated caller
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/my-enrollments [get]
func (c *EnrollmentController) GetMyEnrollments(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetMyEnrollments(ctx, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponseList(enrollments)))
}

// CreateEnrollment enrolls an account into a course
// @Summary Create an enrollment
// @Description Enrolls an account into a course. Students may only enroll themselves.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment data"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate enrollment"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	var req dto.CreateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// UpdateEnrollment merges changes into an enrollment
// @Summary Update an enrollment
// @Description Merges status and grade changes into an enrollment. Admins may update any enrollment, instructors those of their courses.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx, caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEnrollmentResponse(enrollment)))
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Description Removes an enrollment. Admin only.
// @Tags enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
