package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is taught by exactly one teacher.
type Course struct {
	CourseID    uuid.UUID `json:"course_id" db:"course_id"`
	Code        string    `json:"code" db:"code"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	TeacherID   uuid.UUID `json:"teacher_id" db:"teacher_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Enrollment links a student to a course. Its identity is (student_id, course_id).
type Enrollment struct {
	StudentID uuid.UUID `json:"student_id" db:"student_id"`
	CourseID  uuid.UUID `json:"course_id" db:"course_id"`
	Details   *string   `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
