package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
)

// CreateMaterialRequest represents course material creation data
type CreateMaterialRequest struct {
	CourseID    uuid.UUID           `json:"course_id" validate:"required"`
	Type        models.MaterialType `json:"type" validate:"required,oneof=lecture lab announcement assignment reading"`
	Title       string              `json:"title" validate:"required"`
	Description *string             `json:"description"`
}

// CreateMaterialFileRequest represents a file attachment for a material.
// URL must be an absolute http(s) URL.
type CreateMaterialFileRequest struct {
	MaterialID uuid.UUID `json:"material_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	URL        string    `json:"url" validate:"required,http_url"`
	FileType   *string   `json:"file_type"`
	FileSize   *int64    `json:"file_size"`
}
