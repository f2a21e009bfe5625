package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment augments a material with a due date and maximum grade.
type Assignment struct {
	AssignmentID uuid.UUID `json:"assignment_id" db:"assignment_id"`
	MaterialID   uuid.UUID `json:"material_id" db:"material_id"`
	DueDate      time.Time `json:"due_date" db:"due_date"`
	MaxGrade     int       `json:"max_grade" db:"max_grade"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Submission is a student's answer to an assignment. Grade and Feedback stay
// nil until grading happens.
type Submission struct {
	SubmissionID uuid.UUID        `json:"submission_id" db:"submission_id"`
	AssignmentID uuid.UUID        `json:"assignment_id" db:"assignment_id"`
	StudentID    uuid.UUID        `json:"student_id" db:"student_id"`
	ContentURL   string           `json:"content_url" db:"content_url"`
	Status       SubmissionStatus `json:"status" db:"status"`
	Grade        *int             `json:"grade" db:"grade"`
	Feedback     *string          `json:"feedback" db:"feedback"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
}
