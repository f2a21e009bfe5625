// Package services holds the operations exposed to transport. Each service
// validates its input payload before the store is touched and leaves
// persistence to the repositories.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// Services holds every service instance
type Services struct {
	UserService       UserService
	CourseService     CourseService
	MaterialService   MaterialService
	AssignmentService AssignmentService
}

// NewServices wires services on top of the repository container
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository, logger),
		CourseService:     NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, logger),
		MaterialService:   NewMaterialService(repos.MaterialRepository, repos.FileRepository, logger),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, repos.SubmissionRepository, logger),
	}
}
