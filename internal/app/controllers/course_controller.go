package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Unknown teacher or store failure"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetCourseByID retrieves a course by ID
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := middleware.ParseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCoursesByTeacher lists the courses of a teacher
// @Summary List a teacher's courses
// @Tags courses
// @Produce json
// @Param teacherId path string true "Teacher ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /teachers/{teacherId}/courses [get]
func (c *CourseController) GetCoursesByTeacher(ctx *gin.Context) {
	teacherID, ok := middleware.ParseUUIDParam(ctx, "teacherId")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// EnrollStudent handles enrollment creation
// @Summary Enroll a student in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Duplicate enrollment or store failure"
// @Router /enrollments [post]
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.courseService.EnrollStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// GetEnrollmentsByCourse lists the enrollments of a course
func (c *CourseController) GetEnrollmentsByCourse(ctx *gin.Context) {
	courseID, ok := middleware.ParseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	enrollments, err := c.courseService.GetEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}
