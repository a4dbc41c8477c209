package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/middleware"
)

// CourseController handles course-related operations
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
// @Summary Create a new course
// @Description Creates a new course with the provided information
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}
	id, err := c.courseService.CreateCourse(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	course.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(toCourseResponse(course)))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course ID")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toCourseResponse(course)))
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, toCourseResponse(course))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateCourse updates an existing course
// @Summary Update course
// @Description Updates an existing course's information
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course ID")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	course := &models.Course{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toCourseResponse(course)))
}

// DeleteCourse deletes a course
// @Summary Delete course
// @Description Deletes a course. Fails when grades still reference it.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Course still has grades"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Course ID")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted successfully"}))
}

func toCourseResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Credits:     course.Credits,
	}
}
