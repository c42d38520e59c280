package services

import (
	"context"

	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They reproduce the
// real repositories' contract: reads return nil for absent rows and writes
// surface the same sentinel errors the SQL constraints would.

type fakeRoleRepo struct {
	roles map[int64]*models.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]*models.Role{
		1: {ID: 1, Name: models.RoleAdmin},
		2: {ID: 2, Name: models.RoleInstructor},
		3: {ID: 3, Name: models.RoleStudent},
	}}
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id int64) (*models.Role, error) {
	return f.roles[id], nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*models.Role, error) {
	for _, role := range f.roles {
		if string(role.Name) == name {
			return role, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) GetAll(_ context.Context) ([]*models.Role, error) {
	all := make([]*models.Role, 0, len(f.roles))
	for _, role := range f.roles {
		all = append(all, role)
	}
	return all, nil
}

func (f *fakeRoleRepo) EnsureRole(_ context.Context, name models.RoleName) (int64, error) {
	for _, role := range f.roles {
		if role.Name == name {
			return role.ID, nil
		}
	}
	id := int64(len(f.roles) + 1)
	f.roles[id] = &models.Role{ID: id, Name: name}
	return id, nil
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	roles  *fakeRoleRepo
	nextID int64

	// Optional links reproducing the schema's ON DELETE actions.
	enrollments *fakeEnrollmentRepo
	courses     *fakeCourseRepo
}

func newFakeUserRepo(roles *fakeRoleRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, roles: roles, nextID: 1}
}

func (f *fakeUserRepo) attachRole(user *models.User) *models.User {
	copied := *user
	copied.Role = f.roles.roles[user.RoleID]
	return &copied
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if existing.PhoneNumber == user.PhoneNumber {
			return 0, apperrors.ErrPhoneAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return f.attachRole(user), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return f.attachRole(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	all := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, f.attachRole(user))
	}
	return all, nil
}

func (f *fakeUserRepo) GetByRole(_ context.Context, roleName string) ([]*models.User, error) {
	var matched []*models.User
	for _, user := range f.users {
		withRole := f.attachRole(user)
		if withRole.Role != nil && string(withRole.Role.Name) == roleName {
			matched = append(matched, withRole)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	stored := *user
	stored.Role = nil
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	if f.enrollments != nil {
		for eid, enrollment := range f.enrollments.enrollments {
			if enrollment.UserID == id {
				delete(f.enrollments.enrollments, eid)
			}
		}
	}
	if f.courses != nil {
		for _, course := range f.courses.courses {
			if course.InstructorID != nil && *course.InstructorID == id {
				course.InstructorID = nil
			}
		}
	}
	return nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, user := range f.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) PhoneExists(_ context.Context, phone string, excludeID int64) (bool, error) {
	for _, user := range f.users {
		if user.PhoneNumber == phone && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// mustAddUser seeds an account directly, bypassing uniqueness checks.
func (f *fakeUserRepo) mustAddUser(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
	}
	if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	stored := *user
	f.users[user.ID] = &stored
	return f.attachRole(&stored)
}

type fakeCategoryRepo struct {
	categories map[int64]*models.CourseCategory
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]*models.CourseCategory{}, nextID: 1}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.CourseCategory) error {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return apperrors.ErrCategoryAlreadyExists
		}
	}
	category.ID = f.nextID
	f.nextID++
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*models.CourseCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]*models.CourseCategory, error) {
	all := make([]*models.CourseCategory, 0, len(f.categories))
	for _, category := range f.categories {
		copied := *category
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *models.CourseCategory) error {
	if _, ok := f.categories[category.ID]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, category := range f.categories {
		if category.Name == name && category.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) mustAddCategory(category *models.CourseCategory) *models.CourseCategory {
	if category.ID == 0 {
		category.ID = f.nextID
	}
	if category.ID >= f.nextID {
		f.nextID = category.ID + 1
	}
	stored := *category
	f.categories[category.ID] = &stored
	return &stored
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64

	// Optional link reproducing the ON DELETE CASCADE on enrollments.
	enrollments *fakeEnrollmentRepo
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*models.Course{}, nextID: 1}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	stored := *course
	stored.Category = nil
	stored.Instructor = nil
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		copied := *course
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeCourseRepo) GetByCategory(_ context.Context, categoryID int64) ([]*models.Course, error) {
	var matched []*models.Course
	for _, course := range f.courses {
		if course.CategoryID == categoryID {
			copied := *course
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeCourseRepo) GetByInstructor(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var matched []*models.Course
	for _, course := range f.courses {
		if course.InstructorID != nil && *course.InstructorID == instructorID {
			copied := *course
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	stored.Category = nil
	stored.Instructor = nil
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	if f.enrollments != nil {
		for eid, enrollment := range f.enrollments.enrollments {
			if enrollment.CourseID == id {
				delete(f.enrollments.enrollments, eid)
			}
		}
	}
	return nil
}

func (f *fakeCourseRepo) ExistsByCategory(_ context.Context, categoryID int64) (bool, error) {
	for _, course := range f.courses {
		if course.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseRepo) mustAddCourse(course *models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = f.nextID
	}
	if course.ID >= f.nextID {
		f.nextID = course.ID + 1
	}
	stored := *course
	stored.Category = nil
	stored.Instructor = nil
	f.courses[course.ID] = &stored
	return &stored
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	nextID      int64
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: map[int64]*models.Enrollment{}, nextID: 1}
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, existing := range f.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrEnrollmentAlreadyExists
		}
	}
	enrollment.ID = f.nextID
	f.nextID++
	stored := *enrollment
	stored.User = nil
	stored.Course = nil
	f.enrollments[enrollment.ID] = &stored
	return nil
}

func (f *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return nil, nil
	}
	copied := *enrollment
	return &copied, nil
}

func (f *fakeEnrollmentRepo) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	all := make([]*models.Enrollment, 0, len(f.enrollments))
	for _, enrollment := range f.enrollments {
		copied := *enrollment
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeEnrollmentRepo) GetByUser(_ context.Context, userID int64) ([]*models.Enrollment, error) {
	var matched []*models.Enrollment
	for _, enrollment := range f.enrollments {
		if enrollment.UserID == userID {
			copied := *enrollment
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeEnrollmentRepo) GetByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var matched []*models.Enrollment
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID {
			copied := *enrollment
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakeEnrollmentRepo) Update(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := f.enrollments[enrollment.ID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	stored := *enrollment
	stored.User = nil
	stored.Course = nil
	f.enrollments[enrollment.ID] = &stored
	return nil
}

func (f *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrollments, id)
	return nil
}

func (f *fakeEnrollmentRepo) PairExists(_ context.Context, userID, courseID int64) (bool, error) {
	for _, enrollment := range f.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) mustAddEnrollment(enrollment *models.Enrollment) *models.Enrollment {
	if enrollment.ID == 0 {
		enrollment.ID = f.nextID
	}
	if enrollment.ID >= f.nextID {
		f.nextID = enrollment.ID + 1
	}
	stored := *enrollment
	stored.User = nil
	stored.Course = nil
	f.enrollments[enrollment.ID] = &stored
	return &stored
}
