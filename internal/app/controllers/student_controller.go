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

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student. Email is optional but must be a valid address when present.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or email format"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student := &models.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		FacultyID:      req.FacultyID,
		EnrollmentYear: req.EnrollmentYear,
	}
	id, err := c.studentService.CreateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	student.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(toStudentResponse(student)))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a specific student by their ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student ID")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toStudentResponse(student)))
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves a list of all students, optionally filtered by faculty
// @Tags students
// @Accept json
// @Produce json
// @Param facultyId query int false "Filter by faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid faculty ID filter"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	var facultyID int64
	if raw := ctx.Query("facultyId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID filter").
				WithDetails("facultyId must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(errorDetail))
			return
		}
		facultyID = parsed
	}

	students, err := c.studentService.GetAllStudents(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.StudentListResponse{Students: make([]dto.StudentResponse, 0, len(students))}
	for _, student := range students {
		resp.Students = append(resp.Students, toStudentResponse(student))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateStudent updates an existing student
// @Summary Update student
// @Description Updates an existing student's information
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or email format"
// @Failure 404 {object} dto.APIResponse "Student or faculty not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student ID")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student := &models.Student{
		ID:             id,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		FacultyID:      req.FacultyID,
		EnrollmentYear: req.EnrollmentYear,
	}
	if err := c.studentService.UpdateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toStudentResponse(student)))
}

// DeleteStudent deletes a student
// @Summary Delete student
// @Description Deletes a student. Fails when grades still reference them.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "Student still has grades"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Student ID")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted successfully"}))
}

func toStudentResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:             student.ID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Email:          student.Email,
		FacultyID:      student.FacultyID,
		EnrollmentYear: student.EnrollmentYear,
	}
}
