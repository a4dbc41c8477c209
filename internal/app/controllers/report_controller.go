package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/middleware"
)

// ReportController serves the aggregate report endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// FacultyAverages returns the average grade per faculty
// @Summary Average grade per faculty
// @Description Returns each faculty's average grade and grade count, highest average first
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyAverageResponse} "Report retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /reports/faculty-averages [get]
func (c *ReportController) FacultyAverages(ctx *gin.Context) {
	rows, err := c.reportService.FacultyAverages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.FacultyAverageResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.FacultyAverageResponse{
			FacultyID:   row.FacultyID,
			FacultyName: row.FacultyName,
			AvgGrade:    row.AvgGrade,
			GradeCount:  row.GradeCount,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// TopStudents returns students whose average grade exceeds 4.0
// @Summary Top students
// @Description Returns students with an average grade above 4.0, highest average first
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TopStudentResponse} "Report retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /reports/top-students [get]
func (c *ReportController) TopStudents(ctx *gin.Context) {
	rows, err := c.reportService.TopStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.TopStudentResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.TopStudentResponse{
			StudentID:  row.StudentID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			AvgGrade:   row.AvgGrade,
			GradeCount: row.GradeCount,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// CourseStats returns per-course grade statistics
// @Summary Grade statistics per course
// @Description Returns each course's grade count and average grade, busiest course first
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseStatsResponse} "Report retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /reports/course-stats [get]
func (c *ReportController) CourseStats(ctx *gin.Context) {
	rows, err := c.reportService.CourseStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseStatsResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.CourseStatsResponse{
			CourseID:   row.CourseID,
			CourseName: row.CourseName,
			GradeCount: row.GradeCount,
			AvgGrade:   row.AvgGrade,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
