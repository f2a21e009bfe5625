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

var materialColumns = []string{"material_id", "course_id", "type", "title", "description", "created_at", "updated_at"}

// MaterialRepository handles database operations for course materials
type MaterialRepository struct {
	gw *db.Gateway
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(gw *db.Gateway) *MaterialRepository {
	return &MaterialRepository{gw: gw}
}

// Create inserts a course material and returns the stored record
func (r *MaterialRepository) Create(ctx context.Context, req *dto.CreateMaterialRequest) (*models.CourseMaterial, error) {
	q := r.gw.Builder().
		Insert("course_materials").
		Columns("course_id", "type", "title", "description").
		Values(req.CourseID, string(req.Type), req.Title, helpers.GetNullString(req.Description)).
		Suffix(returning(materialColumns))

	var material *models.CourseMaterial
	err := queryRow(ctx, r.gw, "materials.create", q, nil, func(row rowScanner) error {
		var err error
		material, err = scanMaterial(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}

// GetByID retrieves a course material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CourseMaterial, error) {
	q := r.gw.Builder().
		Select(materialColumns...).
		From("course_materials").
		Where("material_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("material %s not found", id))

	var material *models.CourseMaterial
	err := queryRow(ctx, r.gw, "materials.get", q, notFound, func(row rowScanner) error {
		var err error
		material, err = scanMaterial(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}

// ListByCourse retrieves the materials of a course ordered by creation time, oldest first
func (r *MaterialRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.CourseMaterial, error) {
	q := r.gw.Builder().
		Select(materialColumns...).
		From("course_materials").
		Where("course_id = ?", courseID).
		OrderBy("created_at ASC")

	materials := []models.CourseMaterial{}
	err := queryRows(ctx, r.gw, "materials.list_by_course", q, func(row rowScanner) error {
		material, err := scanMaterial(row)
		if err != nil {
			return err
		}
		materials = append(materials, *material)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func scanMaterial(row rowScanner) (*models.CourseMaterial, error) {
	var material models.CourseMaterial
	err := row.Scan(
		&material.MaterialID,
		&material.CourseID,
		&material.Type,
		&material.Title,
		&material.Description,
		helpers.ScanTime(&material.CreatedAt),
		helpers.ScanTime(&material.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &material, nil
}
