package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// CourseService defines the interface for courses and their enrollments
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
	EnrollStudent(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CreateCourse validates and stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("code", req.Code).Str("teacherID", req.TeacherID.String()).Msg("Failed to create course")
		return nil, err
	}

	s.logger.Info().Str("courseID", course.CourseID.String()).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetCoursesByTeacher lists the courses taught by a teacher
func (s *courseServiceImpl) GetCoursesByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	return s.courseRepo.ListByTeacher(ctx, teacherID)
}

// EnrollStudent validates and stores an enrollment
func (s *courseServiceImpl) EnrollStudent(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Str("studentID", req.StudentID.String()).
			Str("courseID", req.CourseID.String()).
			Msg("Failed to enroll student")
		return nil, err
	}

	s.logger.Info().
		Str("studentID", enrollment.StudentID.String()).
		Str("courseID", enrollment.CourseID.String()).
		Msg("Student enrolled")
	return enrollment, nil
}

// GetEnrollmentsByCourse lists the enrollments of a course
func (s *courseServiceImpl) GetEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	return s.enrollmentRepo.ListByCourse(ctx, courseID)
}
