package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

var courseColumns = []string{"course_id", "code", "title", "description", "teacher_id", "created_at", "updated_at"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	gw *db.Gateway
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(gw *db.Gateway) *CourseRepository {
	return &CourseRepository{gw: gw}
}

// Create inserts a course and returns the stored record
func (r *CourseRepository) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	q := r.gw.Builder().
		Insert("courses").
		Columns("code", "title", "description", "teacher_id").
		Values(req.Code, req.Title, helpers.GetNullString(req.Description), req.TeacherID).
		Suffix(returning(courseColumns))

	var course *models.Course
	err := queryRow(ctx, r.gw, "courses.create", q, nil, func(row rowScanner) error {
		var err error
		course, err = scanCourse(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	q := r.gw.Builder().
		Select(courseColumns...).
		From("courses").
		Where("course_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("course %s not found", id))

	var course *models.Course
	err := queryRow(ctx, r.gw, "courses.get", q, notFound, func(row rowScanner) error {
		var err error
		course, err = scanCourse(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// ListByTeacher retrieves all courses taught by a teacher, in store order
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	q := r.gw.Builder().
		Select(courseColumns...).
		From("courses").
		Where("teacher_id = ?", teacherID)

	courses := []models.Course{}
	err := queryRows(ctx, r.gw, "courses.list_by_teacher", q, func(row rowScanner) error {
		course, err := scanCourse(row)
		if err != nil {
			return err
		}
		courses = append(courses, *course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.CourseID,
		&course.Code,
		&course.Title,
		&course.Description,
		&course.TeacherID,
		helpers.ScanTime(&course.CreatedAt),
		helpers.ScanTime(&course.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
