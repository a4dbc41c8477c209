package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/middleware"
)

const examDateLayout = "2006-01-02"

// GradeController handles grade-related operations
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// CreateGrade handles grade creation
// @Summary Record a grade
// @Description Records a grade for a student in a course
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade recorded successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	examDate, err := time.Parse(examDateLayout, req.ExamDate)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam date").
			WithField("examDate").
			WithDetails("examDate must use the YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(errorDetail))
		return
	}

	grade := &models.Grade{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Grade:     req.Grade,
		ExamDate:  examDate,
	}
	id, err := c.gradeService.CreateGrade(ctx, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	grade.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(toGradeResponse(grade)))
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Description Retrieves a specific grade by its ID
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid grade ID"
// @Failure 404 {object} dto.APIResponse "Grade not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Grade ID")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toGradeResponse(grade)))
}

// GetGradesByStudent retrieves all grades of one student
// @Summary Get grades by student
// @Description Retrieves all grades recorded for a student
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeListResponse} "Grades retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id}/grades [get]
func (c *GradeController) GetGradesByStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student ID")
	if !ok {
		return
	}

	grades, err := c.gradeService.GetGradesByStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.GradeListResponse{Grades: make([]dto.GradeResponse, 0, len(grades))}
	for _, grade := range grades {
		resp.Grades = append(resp.Grades, toGradeResponse(grade))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DeleteGrade deletes a grade
// @Summary Delete grade
// @Description Deletes a recorded grade
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid grade ID"
// @Failure 404 {object} dto.APIResponse "Grade not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Grade ID")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Grade deleted successfully"}))
}

func toGradeResponse(grade *models.Grade) dto.GradeResponse {
	return dto.GradeResponse{
		ID:        grade.ID,
		StudentID: grade.StudentID,
		CourseID:  grade.CourseID,
		Grade:     grade.Grade,
		ExamDate:  grade.ExamDate.Format(examDateLayout),
	}
}
