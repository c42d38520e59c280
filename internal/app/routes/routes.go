package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mertkaya/eduhub/internal/app/controllers"
	"github.com/mertkaya/eduhub/internal/middleware"
)

// SetupRouter configures all application routes. Role checks live in the
// service layer; the router only distinguishes public from authenticated.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	categoryController *controllers.CategoryController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/by-category/:id", courseController.GetCoursesByCategory)
		courses.GET("/by-instructor/:id", courseController.GetCoursesByInstructor)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	categories := v1.Group("/coursecategories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.GET("/:id", categoryController.GetCategoryByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/profile", userController.GetProfile)
			users.GET("/by-role/:roleName", userController.GetUsersByRole)
			users.GET("/:id", userController.GetUserByID)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.GET("/my-courses", courseController.GetMyCourses)
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}

		categoriesProtected := authenticated.Group("/coursecategories")
		{
			categoriesProtected.POST("", categoryController.CreateCategory)
			categoriesProtected.PUT("/:id", categoryController.UpdateCategory)
			categoriesProtected.DELETE("/:id", categoryController.DeleteCategory)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.GetAllEnrollments)
			enrollments.GET("/my-enrollments", enrollmentController.GetMyEnrollments)
			enrollments.GET("/by-user/:id", enrollmentController.GetEnrollmentsByUser)
			enrollments.GET("/by-course/:id", enrollmentController.GetEnrollmentsByCourse)
			enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
			enrollments.POST("", enrollmentController.CreateEnrollment)
			enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}
	}
}
