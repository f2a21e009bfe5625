package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// MaterialService defines the interface for course materials and their files
type MaterialService interface {
	CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.CourseMaterial, error)
	GetMaterialByID(ctx context.Context, id uuid.UUID) (*models.CourseMaterial, error)
	ListMaterialsWithFiles(ctx context.Context, courseID uuid.UUID) ([]models.CourseMaterialWithFiles, error)
	AddFile(ctx context.Context, req *dto.CreateMaterialFileRequest) (*models.MaterialFile, error)
	GetFileByID(ctx context.Context, id uuid.UUID) (*models.MaterialFile, error)
	GetFilesByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.MaterialFile, error)
}

// materialServiceImpl implements MaterialService
type materialServiceImpl struct {
	materialRepo *repositories.MaterialRepository
	fileRepo     *repositories.MaterialFileRepository
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo *repositories.MaterialRepository,
	fileRepo *repositories.MaterialFileRepository,
	logger zerolog.Logger,
) MaterialService {
	return &materialServiceImpl{
		materialRepo: materialRepo,
		fileRepo:     fileRepo,
		logger:       logger,
	}
}

// CreateMaterial validates and stores a course material
func (s *materialServiceImpl) CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.CourseMaterial, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	material, err := s.materialRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("courseID", req.CourseID.String()).Msg("Failed to create material")
		return nil, err
	}

	s.logger.Info().
		Str("materialID", material.MaterialID.String()).
		Str("type", string(material.Type)).
		Msg("Material created")
	return material, nil
}

// GetMaterialByID retrieves a material by ID
func (s *materialServiceImpl) GetMaterialByID(ctx context.Context, id uuid.UUID) (*models.CourseMaterial, error) {
	return s.materialRepo.GetByID(ctx, id)
}

// ListMaterialsWithFiles returns every material of a course in creation order,
// each with its files in update order. A course without materials, existing
// or not, yields a not-found error.
func (s *materialServiceImpl) ListMaterialsWithFiles(ctx context.Context, courseID uuid.UUID) ([]models.CourseMaterialWithFiles, error) {
	materials, err := s.materialRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no materials found for course %s", courseID))
	}

	result := make([]models.CourseMaterialWithFiles, 0, len(materials))
	for _, material := range materials {
		files, err := s.fileRepo.ListByMaterial(ctx, material.MaterialID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CourseMaterialWithFiles{
			CourseMaterial: material,
			Files:          files,
		})
	}

	s.logger.Debug().Str("courseID", courseID.String()).Int("materials", len(result)).Msg("Listed materials with files")
	return result, nil
}

// AddFile validates and attaches a file to a material
func (s *materialServiceImpl) AddFile(ctx context.Context, req *dto.CreateMaterialFileRequest) (*models.MaterialFile, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	file, err := s.fileRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("materialID", req.MaterialID.String()).Msg("Failed to add file")
		return nil, err
	}

	s.logger.Info().Str("fileID", file.FileID.String()).Str("name", file.Name).Msg("File added to material")
	return file, nil
}

// GetFileByID retrieves a file by ID
func (s *materialServiceImpl) GetFileByID(ctx context.Context, id uuid.UUID) (*models.MaterialFile, error) {
	return s.fileRepo.GetByID(ctx, id)
}

// GetFilesByMaterial lists the files of a material
func (s *materialServiceImpl) GetFilesByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.MaterialFile, error) {
	return s.fileRepo.ListByMaterial(ctx, materialID)
}
