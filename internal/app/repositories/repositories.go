package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RoleRepository       *RoleRepository
	UserRepository       *UserRepository
	CategoryRepository   *CategoryRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RoleRepository:       NewRoleRepository(db),
		UserRepository:       NewUserRepository(db),
		CategoryRepository:   NewCategoryRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
