package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateAssignmentRequest represents assignment creation data.
// MaxGrade is a pointer so that an explicit 0 is distinguishable from absence.
type CreateAssignmentRequest struct {
	MaterialID uuid.UUID `json:"material_id" validate:"required"`
	DueDate    time.Time `json:"due_date" validate:"required"`
	MaxGrade   *int      `json:"max_grade" validate:"required,min=0"`
}

// CreateSubmissionRequest represents a student's submission. Status is not
// accepted from callers; the store starts every submission as pending.
type CreateSubmissionRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	ContentURL   string    `json:"content_url" validate:"required,http_url"`
}
