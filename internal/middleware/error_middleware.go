package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(404, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Faculty not found")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
	case errors.Is(err, apperrors.ErrGradeNotFound):
		c.JSON(404, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Grade not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Faculty name already exists")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email")))
	case errors.Is(err, apperrors.ErrFacultyHasStudents):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceInUse, "Faculty still has students")))
	case errors.Is(err, apperrors.ErrStudentHasGrades):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceInUse, "Student still has grades")))
	case errors.Is(err, apperrors.ErrCourseHasGrades):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceInUse, "Course still has grades")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")))
	case errors.Is(err, apperrors.ErrInvalidEmail):
		c.JSON(400, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, "Email format is invalid").WithField("email")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorAPIResponse(errorDetailFrom(err, dto.ErrorCodeValidationFailed, "Validation failed")))
	case errors.Is(err, apperrors.ErrSeedDisabled):
		c.JSON(403, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeSeedDisabled, "Seeding is disabled in production mode")))
	default:
		c.JSON(500, dto.NewErrorAPIResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errorDetailFrom prefers the wrapped CustomError message over the fallback.
func errorDetailFrom(err error, code dto.ErrorCode, fallback string) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		detail := dto.NewErrorDetail(code, customErr.Message)
		if customErr.Details != nil {
			detail = detail.WithDetails(customErr.Details)
		}
		return detail
	}
	return dto.NewErrorDetail(code, fallback)
}
