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

// AssignmentService defines the interface for assignments and submissions
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	GetAssignmentsByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.Assignment, error)
	SubmitAssignment(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error)
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	GetSubmissionsByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]models.Submission, error)
}

// assignmentServiceImpl implements AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// CreateAssignment validates and stores an assignment
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("materialID", req.MaterialID.String()).Msg("Failed to create assignment")
		return nil, err
	}

	s.logger.Info().
		Str("assignmentID", assignment.AssignmentID.String()).
		Time("dueDate", assignment.DueDate).
		Msg("Assignment created")
	return assignment, nil
}

// GetAssignmentByID retrieves an assignment by ID
func (s *assignmentServiceImpl) GetAssignmentByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// GetAssignmentsByMaterial lists the assignments attached to a material
func (s *assignmentServiceImpl) GetAssignmentsByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.Assignment, error) {
	return s.assignmentRepo.ListByMaterial(ctx, materialID)
}

// SubmitAssignment validates and stores a submission. New submissions start pending.
func (s *assignmentServiceImpl) SubmitAssignment(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Str("assignmentID", req.AssignmentID.String()).
			Str("studentID", req.StudentID.String()).
			Msg("Failed to store submission")
		return nil, err
	}

	s.logger.Info().Str("submissionID", submission.SubmissionID.String()).Msg("Submission received")
	return submission, nil
}

// GetSubmissionByID retrieves a submission by ID
func (s *assignmentServiceImpl) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// GetSubmissionsByAssignment lists the submissions for an assignment
func (s *assignmentServiceImpl) GetSubmissionsByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]models.Submission, error) {
	return s.submissionRepo.ListByAssignment(ctx, assignmentID)
}
