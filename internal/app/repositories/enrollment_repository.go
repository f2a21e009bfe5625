package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

var enrollmentColumns = []string{"student_id", "course_id", "details", "created_at", "updated_at"}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	gw *db.Gateway
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(gw *db.Gateway) *EnrollmentRepository {
	return &EnrollmentRepository{gw: gw}
}

// Create inserts an enrollment. The store rejects a second row for the same
// (student, course) pair.
func (r *EnrollmentRepository) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	q := r.gw.Builder().
		Insert("enrollments").
		Columns("student_id", "course_id", "details").
		Values(req.StudentID, req.CourseID, helpers.GetNullString(req.Details)).
		Suffix(returning(enrollmentColumns))

	var enrollment *models.Enrollment
	err := queryRow(ctx, r.gw, "enrollments.create", q, nil, func(row rowScanner) error {
		var err error
		enrollment, err = scanEnrollment(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListByCourse retrieves the enrollments of a course, in store order
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	q := r.gw.Builder().
		Select(enrollmentColumns...).
		From("enrollments").
		Where("course_id = ?", courseID)

	enrollments := []models.Enrollment{}
	err := queryRows(ctx, r.gw, "enrollments.list_by_course", q, func(row rowScanner) error {
		enrollment, err := scanEnrollment(row)
		if err != nil {
			return err
		}
		enrollments = append(enrollments, *enrollment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func scanEnrollment(row rowScanner) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Details,
		helpers.ScanTime(&enrollment.CreatedAt),
		helpers.ScanTime(&enrollment.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
