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

var submissionColumns = []string{
	"submission_id", "assignment_id", "student_id", "content_url",
	"status", "grade", "feedback", "created_at", "updated_at",
}

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	gw *db.Gateway
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(gw *db.Gateway) *SubmissionRepository {
	return &SubmissionRepository{gw: gw}
}

// Create inserts a submission. Status, grade and feedback are left to the
// store defaults (pending, NULL, NULL).
func (r *SubmissionRepository) Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	q := r.gw.Builder().
		Insert("submissions").
		Columns("assignment_id", "student_id", "content_url").
		Values(req.AssignmentID, req.StudentID, req.ContentURL).
		Suffix(returning(submissionColumns))

	var submission *models.Submission
	err := queryRow(ctx, r.gw, "submissions.create", q, nil, func(row rowScanner) error {
		var err error
		submission, err = scanSubmission(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	q := r.gw.Builder().
		Select(submissionColumns...).
		From("submissions").
		Where("submission_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("submission %s not found", id))

	var submission *models.Submission
	err := queryRow(ctx, r.gw, "submissions.get", q, notFound, func(row rowScanner) error {
		var err error
		submission, err = scanSubmission(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// ListByAssignment retrieves the submissions for an assignment, in store order
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]models.Submission, error) {
	q := r.gw.Builder().
		Select(submissionColumns...).
		From("submissions").
		Where("assignment_id = ?", assignmentID)

	submissions := []models.Submission{}
	err := queryRows(ctx, r.gw, "submissions.list_by_assignment", q, func(row rowScanner) error {
		submission, err := scanSubmission(row)
		if err != nil {
			return err
		}
		submissions = append(submissions, *submission)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var submission models.Submission
	err := row.Scan(
		&submission.SubmissionID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.ContentURL,
		&submission.Status,
		&submission.Grade,
		&submission.Feedback,
		helpers.ScanTime(&submission.CreatedAt),
		helpers.ScanTime(&submission.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
