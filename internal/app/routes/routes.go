package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	User       *controllers.UserController
	Course     *controllers.CourseController
	Material   *controllers.MaterialController
	Assignment *controllers.AssignmentController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/health", c.Health.Health)

	// API version group
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("", c.User.CreateUser)
		users.GET("/:userId", c.User.GetUserByID)
	}

	v1.GET("/teachers/:teacherId/courses", c.Course.GetCoursesByTeacher)

	courses := v1.Group("/courses")
	{
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:courseId", c.Course.GetCourseByID)
		courses.GET("/:courseId/enrollments", c.Course.GetEnrollmentsByCourse)
		courses.GET("/:courseId/materials", c.Material.GetCourseMaterials)
	}

	v1.POST("/enrollments", c.Course.EnrollStudent)

	materials := v1.Group("/materials")
	{
		materials.POST("", c.Material.CreateMaterial)
		materials.GET("/:materialId", c.Material.GetMaterialByID)
		materials.POST("/:materialId/files", c.Material.AddFile)
		materials.GET("/:materialId/files", c.Material.GetMaterialFiles)
		materials.GET("/:materialId/assignments", c.Assignment.GetAssignmentsByMaterial)
	}

	files := v1.Group("/files")
	{
		files.GET("/:fileId", c.Material.GetFileDetails)
		files.GET("/:fileId/open", c.Material.OpenFile)
	}

	assignments := v1.Group("/assignments")
	{
		assignments.POST("", c.Assignment.CreateAssignment)
		assignments.GET("/:assignmentId", c.Assignment.GetAssignmentByID)
		assignments.GET("/:assignmentId/submissions", c.Assignment.GetSubmissionsByAssignment)
	}

	submissions := v1.Group("/submissions")
	{
		submissions.POST("", c.Assignment.SubmitAssignment)
		submissions.GET("/:submissionId", c.Assignment.GetSubmissionByID)
	}
}
