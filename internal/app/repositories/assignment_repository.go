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

var assignmentColumns = []string{"assignment_id", "material_id", "due_date", "max_grade", "created_at", "updated_at"}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	gw *db.Gateway
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(gw *db.Gateway) *AssignmentRepository {
	return &AssignmentRepository{gw: gw}
}

// Create inserts an assignment. A missing MaxGrade is reported as a
// validation failure without touching the store.
func (r *AssignmentRepository) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if req.MaxGrade == nil {
		return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{
			{Field: "max_grade", Rule: "required", Message: "max_grade is required"},
		}}
	}

	q := r.gw.Builder().
		Insert("assignments").
		Columns("material_id", "due_date", "max_grade").
		Values(req.MaterialID, req.DueDate, *req.MaxGrade).
		Suffix(returning(assignmentColumns))

	var assignment *models.Assignment
	err := queryRow(ctx, r.gw, "assignments.create", q, nil, func(row rowScanner) error {
		var err error
		assignment, err = scanAssignment(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	q := r.gw.Builder().
		Select(assignmentColumns...).
		From("assignments").
		Where("assignment_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("assignment %s not found", id))

	var assignment *models.Assignment
	err := queryRow(ctx, r.gw, "assignments.get", q, notFound, func(row rowScanner) error {
		var err error
		assignment, err = scanAssignment(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListByMaterial retrieves the assignments attached to a material, in store order
func (r *AssignmentRepository) ListByMaterial(ctx context.Context, materialID uuid.UUID) ([]models.Assignment, error) {
	q := r.gw.Builder().
		Select(assignmentColumns...).
		From("assignments").
		Where("material_id = ?", materialID)

	assignments := []models.Assignment{}
	err := queryRows(ctx, r.gw, "assignments.list_by_material", q, func(row rowScanner) error {
		assignment, err := scanAssignment(row)
		if err != nil {
			return err
		}
		assignments = append(assignments, *assignment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	var assignment models.Assignment
	err := row.Scan(
		&assignment.AssignmentID,
		&assignment.MaterialID,
		helpers.ScanTime(&assignment.DueDate),
		&assignment.MaxGrade,
		helpers.ScanTime(&assignment.CreatedAt),
		helpers.ScanTime(&assignment.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
