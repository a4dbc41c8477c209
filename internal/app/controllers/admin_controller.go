package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/middleware"
)

// AdminController exposes administrative operations
type AdminController struct {
	seedService services.SeedService
}

// NewAdminController creates a new AdminController
func NewAdminController(seedService services.SeedService) *AdminController {
	return &AdminController{
		seedService: seedService,
	}
}

// SeedDatabase regenerates the synthetic dataset
// @Summary Regenerate test data
// @Description Wipes all existing data and generates a fresh synthetic dataset. Refused in production mode.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SeedResultResponse} "Dataset regenerated successfully"
// @Failure 403 {object} dto.APIResponse "Seeding is disabled in production mode"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/seed [post]
func (c *AdminController) SeedDatabase(ctx *gin.Context) {
	result, err := c.seedService.Run(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SeedResultResponse{
		Faculties: result.Faculties,
		Courses:   result.Courses,
		Students:  result.Students,
		Grades:    result.Grades,
	}))
}
