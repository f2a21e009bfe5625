package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// AssignmentController handles assignment and submission endpoints
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// CreateAssignment handles assignment creation
// @Summary Create an assignment for a material
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// GetAssignmentByID retrieves an assignment by ID
func (c *AssignmentController) GetAssignmentByID(ctx *gin.Context) {
	id, ok := middleware.ParseUUIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetAssignmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// GetAssignmentsByMaterial lists the assignments of a material
func (c *AssignmentController) GetAssignmentsByMaterial(ctx *gin.Context) {
	materialID, ok := middleware.ParseUUIDParam(ctx, "materialId")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.GetAssignmentsByMaterial(ctx, materialID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignments))
}

// SubmitAssignment handles submission creation
// @Summary Submit an assignment
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubmissionRequest true "Submission information"
// @Success 201 {object} dto.APIResponse{data=models.Submission}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /submissions [post]
func (c *AssignmentController) SubmitAssignment(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	submission, err := c.assignmentService.SubmitAssignment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(submission))
}

// GetSubmissionByID retrieves a submission by ID
func (c *AssignmentController) GetSubmissionByID(ctx *gin.Context) {
	id, ok := middleware.ParseUUIDParam(ctx, "submissionId")
	if !ok {
		return
	}

	submission, err := c.assignmentService.GetSubmissionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(submission))
}

// GetSubmissionsByAssignment lists the submissions for an assignment
// @Summary List submissions for an assignment
// @Tags submissions
// @Produce json
// @Param assignmentId path string true "Assignment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Submission}
// @Router /assignments/{assignmentId}/submissions [get]
func (c *AssignmentController) GetSubmissionsByAssignment(ctx *gin.Context) {
	assignmentID, ok := middleware.ParseUUIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	submissions, err := c.assignmentService.GetSubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(submissions))
}
