package dto

import "github.com/google/uuid"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code        string    `json:"code" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	Details   *string   `json:"details"`
}
