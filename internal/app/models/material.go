package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseMaterial is a content item of a course.
type CourseMaterial struct {
	MaterialID  uuid.UUID    `json:"material_id" db:"material_id"`
	CourseID    uuid.UUID    `json:"course_id" db:"course_id"`
	Type        MaterialType `json:"type" db:"type"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// MaterialFile is an attachment of a material. URL points at the file bytes,
// which are never stored here.
type MaterialFile struct {
	FileID     uuid.UUID `json:"file_id" db:"file_id"`
	MaterialID uuid.UUID `json:"material_id" db:"material_id"`
	Name       string    `json:"name" db:"name"`
	URL        string    `json:"url" db:"url"`
	FileType   *string   `json:"file_type" db:"file_type"`
	FileSize   *int64    `json:"file_size" db:"file_size"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CourseMaterialWithFiles is a material together with its files, ordered by
// last update ascending.
type CourseMaterialWithFiles struct {
	CourseMaterial
	Files []MaterialFile `json:"files"`
}
