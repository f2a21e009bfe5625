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

var fileColumns = []string{"file_id", "material_id", "name", "url", "file_type", "file_size", "created_at", "updated_at"}

// MaterialFileRepository handles database operations for material files
type MaterialFileRepository struct {
	gw *db.Gateway
}

// NewMaterialFileRepository creates a new MaterialFileRepository
func NewMaterialFileRepository(gw *db.Gateway) *MaterialFileRepository {
	return &MaterialFileRepository{gw: gw}
}

// Create attaches a file record to a material
func (r *MaterialFileRepository) Create(ctx context.Context, req *dto.CreateMaterialFileRequest) (*models.MaterialFile, error) {
	q := r.gw.Builder().
		Insert("material_files").
		Columns("material_id", "name", "url", "file_type", "file_size").
		Values(
			req.MaterialID,
			req.Name,
			req.URL,
			helpers.GetNullString(req.FileType),
			helpers.GetNullInt64(req.FileSize),
		).
		Suffix(returning(fileColumns))

	var file *models.MaterialFile
	err := queryRow(ctx, r.gw, "files.create", q, nil, func(row rowScanner) error {
		var err error
		file, err = scanFile(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// GetByID retrieves a file by ID
func (r *MaterialFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaterialFile, error) {
	q := r.gw.Builder().
		Select(fileColumns...).
		From("material_files").
		Where("file_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("file %s not found", id))

	var file *models.MaterialFile
	err := queryRow(ctx, r.gw, "files.get", q, notFound, func(row rowScanner) error {
		var err error
		file, err = scanFile(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ListByMaterial retrieves the files of a material ordered by last update, oldest first
func (r *MaterialFileRepository) ListByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.MaterialFile, error) {
	q := r.gw.Builder().
		Select(fileColumns...).
		From("material_files").
		Where("material_id = ?", materialID).
		OrderBy("updated_at ASC")

	files := []models.MaterialFile{}
	err := queryRows(ctx, r.gw, "files.list_by_material", q, func(row rowScanner) error {
		file, err := scanFile(row)
		if err != nil {
			return err
		}
		files = append(files, *file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func scanFile(row rowScanner) (*models.MaterialFile, error) {
	var file models.MaterialFile
	err := row.Scan(
		&file.FileID,
		&file.MaterialID,
		&file.Name,
		&file.URL,
		&file.FileType,
		&file.FileSize,
		helpers.ScanTime(&file.CreatedAt),
		helpers.ScanTime(&file.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}
