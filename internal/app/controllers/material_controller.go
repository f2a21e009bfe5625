package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// MaterialController handles course material and file endpoints
type MaterialController struct {
	materialService services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// CreateMaterial handles material creation
// @Summary Create a course material
// @Tags materials
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Material information"
// @Success 201 {object} dto.APIResponse{data=models.CourseMaterial}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	var req dto.CreateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.CreateMaterial(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(material))
}

// GetMaterialByID retrieves a material by ID
func (c *MaterialController) GetMaterialByID(ctx *gin.Context) {
	id, ok := middleware.ParseUUIDParam(ctx, "materialId")
	if !ok {
		return
	}

	material, err := c.materialService.GetMaterialByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(material))
}

// GetCourseMaterials lists a course's materials with their files
// @Summary List course materials with files
// @Tags materials
// @Produce json
// @Param courseId path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseMaterialWithFiles}
// @Failure 404 {object} dto.ErrorResponse "No materials found for course"
// @Router /courses/{courseId}/materials [get]
func (c *MaterialController) GetCourseMaterials(ctx *gin.Context) {
	courseID, ok := middleware.ParseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	materials, err := c.materialService.ListMaterialsWithFiles(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(materials))
}

// AddFile attaches a file to the material named in the path
// @Summary Attach a file to a material
// @Tags files
// @Accept json
// @Produce json
// @Param materialId path string true "Material ID" Format(uuid)
// @Param request body dto.CreateMaterialFileRequest true "File information"
// @Success 201 {object} dto.APIResponse{data=models.MaterialFile}
// @Failure 400 {object} dto.ErrorResponse "Material ID mismatch or invalid data"
// @Router /materials/{materialId}/files [post]
func (c *MaterialController) AddFile(ctx *gin.Context) {
	materialID, ok := middleware.ParseUUIDParam(ctx, "materialId")
	if !ok {
		return
	}

	var req dto.CreateMaterialFileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if req.MaterialID != materialID {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Material ID mismatch"))
		return
	}

	file, err := c.materialService.AddFile(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(file))
}

// GetMaterialFiles lists the files of a material
func (c *MaterialController) GetMaterialFiles(ctx *gin.Context) {
	materialID, ok := middleware.ParseUUIDParam(ctx, "materialId")
	if !ok {
		return
	}

	files, err := c.materialService.GetFilesByMaterial(ctx, materialID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(files))
}

// GetFileDetails retrieves a file record by ID
func (c *MaterialController) GetFileDetails(ctx *gin.Context) {
	fileID, ok := middleware.ParseUUIDParam(ctx, "fileId")
	if !ok {
		return
	}

	file, err := c.materialService.GetFileByID(ctx, fileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(file))
}

// OpenFile redirects the client to the stored file URL. The bytes are never proxied.
// @Summary Open a file
// @Tags files
// @Param fileId path string true "File ID" Format(uuid)
// @Success 307 "Redirect to the file URL"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /files/{fileId}/open [get]
func (c *MaterialController) OpenFile(ctx *gin.Context) {
	fileID, ok := middleware.ParseUUIDParam(ctx, "fileId")
	if !ok {
		return
	}

	file, err := c.materialService.GetFileByID(ctx, fileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, file.URL)
}
