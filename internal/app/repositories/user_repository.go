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

// password_hash is written but never selected.
var userColumns = []string{"user_id", "name", "email", "role", "created_at", "updated_at"}

// UserRepository handles database operations for users
type UserRepository struct {
	gw *db.Gateway
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(gw *db.Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// Create inserts a user and returns the stored record
func (r *UserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	q := r.gw.Builder().
		Insert("users").
		Columns("name", "email", "password_hash", "role").
		Values(req.Name, req.Email, req.PasswordHash, string(req.Role)).
		Suffix(returning(userColumns))

	var user *models.User
	err := queryRow(ctx, r.gw, "users.create", q, nil, func(row rowScanner) error {
		var err error
		user, err = scanUser(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	q := r.gw.Builder().
		Select(userColumns...).
		From("users").
		Where("user_id = ?", id)

	notFound := apperrors.NewResourceNotFoundError(fmt.Sprintf("user %s not found", id))

	var user *models.User
	err := queryRow(ctx, r.gw, "users.get", q, notFound, func(row rowScanner) error {
		var err error
		user, err = scanUser(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Role,
		helpers.ScanTime(&user.CreatedAt),
		helpers.ScanTime(&user.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
