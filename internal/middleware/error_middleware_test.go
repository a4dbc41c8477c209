package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/models/dto"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	return recorder, body
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "faculty not found",
			err:        apperrors.ErrFacultyNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "student not found",
			err:        apperrors.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "duplicate faculty name",
			err:        apperrors.ErrFacultyAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "duplicate email",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "faculty has students",
			err:        apperrors.ErrFacultyHasStudents,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceInUse,
		},
		{
			name:       "student has grades",
			err:        apperrors.ErrStudentHasGrades,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceInUse,
		},
		{
			name:       "invalid email",
			err:        apperrors.ErrInvalidEmail,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeInvalidEmail,
		},
		{
			name:       "validation failure",
			err:        apperrors.ErrValidationFailed,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "seeding disabled",
			err:        apperrors.ErrSeedDisabled,
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeSeedDisabled,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := handleError(t, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("response has no error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", body.Error.Code, tt.wantCode)
			}
			if body.Data != nil {
				t.Error("error response carries data")
			}
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewBadRequestError("enrollment year must be between 2000 and 2024")

	recorder, body := handleError(t, wrapped)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	if body.Error == nil {
		t.Fatal("response has no error detail")
	}
	if body.Error.Message != "enrollment year must be between 2000 and 2024" {
		t.Errorf("error message = %q, want wrapped message", body.Error.Message)
	}
}

func TestHandleAPIErrorDoesNotLeakInternals(t *testing.T) {
	_, body := handleError(t, errors.New("pq: connection refused at 10.0.0.3:5432"))

	if body.Error == nil {
		t.Fatal("response has no error detail")
	}
	if body.Error.Message != "Internal server error" {
		t.Errorf("error message = %q, internal details must not leak", body.Error.Message)
	}
}
