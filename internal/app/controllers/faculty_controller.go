package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty
// @Description Creates a new faculty with the provided information
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Faculty name already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty := &models.Faculty{
		Name: req.Name,
		Dean: req.Dean,
	}
	id, err := c.facultyService.CreateFaculty(ctx, faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	faculty.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(toFacultyResponse(faculty)))
}

// GetFacultyByID retrieves a faculty by ID
// @Summary Get faculty by ID
// @Description Retrieves a specific faculty by its ID
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid faculty ID"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty ID")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toFacultyResponse(faculty)))
}

// GetAllFaculties retrieves all faculties
// @Summary Get all faculties
// @Description Retrieves a list of all faculties
// @Tags faculties
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculties retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.FacultyListResponse{Faculties: make([]dto.FacultyResponse, 0, len(faculties))}
	for _, faculty := range faculties {
		resp.Faculties = append(resp.Faculties, toFacultyResponse(faculty))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateFaculty updates an existing faculty
// @Summary Update faculty
// @Description Updates an existing faculty's information
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 409 {object} dto.APIResponse "Faculty name already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /faculties/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty ID")
	if !ok {
		return
	}
	var req dto.UpdateFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty := &models.Faculty{
		ID:   id,
		Name: req.Name,
		Dean: req.Dean,
	}
	if err := c.facultyService.UpdateFaculty(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toFacultyResponse(faculty)))
}

// DeleteFaculty deletes a faculty
// @Summary Delete faculty
// @Description Deletes a faculty. Fails when students still reference it.
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid faculty ID"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 409 {object} dto.APIResponse "Faculty still has students"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /faculties/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty ID")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Faculty deleted successfully"}))
}

func toFacultyResponse(faculty *models.Faculty) dto.FacultyResponse {
	return dto.FacultyResponse{
		ID:   faculty.ID,
		Name: faculty.Name,
		Dean: faculty.Dean,
	}
}

// parseIDParam parses the :id path parameter, writing a 400 response when it
// is not a positive number.
func parseIDParam(ctx *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label).
			WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(errorDetail))
		return 0, false
	}
	return id, true
}
