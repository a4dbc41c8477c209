package services

import (
	"context"
	"fmt"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
	"github.com/mertkaya/gradekeeper/internal/pkg/validation"
)

// gradeRepository abstracts the persistence layer for grade operations.
type gradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
	Delete(ctx context.Context, id int64) error
}

// studentChecker reports whether a student exists.
type studentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// courseChecker reports whether a course exists.
type courseChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// GradeService defines the interface for grade-related operations
type GradeService interface {
	CreateGrade(ctx context.Context, grade *models.Grade) (int64, error)
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetGradesByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) error
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	gradeRepo   gradeRepository
	studentRepo studentChecker
	courseRepo  courseChecker
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo gradeRepository, studentRepo studentChecker, courseRepo courseChecker) GradeService {
	return &gradeServiceImpl{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

// validateGrade validates grade data before database operations
func (s *gradeServiceImpl) validateGrade(grade *models.Grade) error {
	if grade == nil {
		return fmt.Errorf("%w: grade is nil", apperrors.ErrValidationFailed)
	}

	if grade.StudentID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if grade.CourseID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	gradeOK := validation.NewNumericValidation(grade.Grade).
		WithMin(validation.GradeMin).
		WithMax(validation.GradeMax).
		Validate()
	if !gradeOK {
		return fmt.Errorf("%w: grade must be between %d and %d",
			apperrors.ErrValidationFailed, validation.GradeMin, validation.GradeMax)
	}

	if grade.ExamDate.IsZero() {
		return fmt.Errorf("%w: exam date is required", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateGrade records an exam result for a student in a course
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, grade *models.Grade) (int64, error) {
	if err := s.validateGrade(grade); err != nil {
		return 0, err
	}

	exists, err := s.studentRepo.Exists(ctx, grade.StudentID)
	if err != nil {
		return 0, fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return 0, apperrors.ErrStudentNotFound
	}

	exists, err = s.courseRepo.Exists(ctx, grade.CourseID)
	if err != nil {
		return 0, fmt.Errorf("error checking course existence: %w", err)
	}
	if !exists {
		return 0, apperrors.ErrCourseNotFound
	}

	id, err := s.gradeRepo.Create(ctx, grade)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrCourseNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating grade: %w", err)
	}
	return id, nil
}

// GetGradeByID retrieves a grade by ID
func (s *gradeServiceImpl) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid grade ID", apperrors.ErrValidationFailed)
	}

	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrGradeNotFound) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	return grade, nil
}

// GetGradesByStudent retrieves all grades for a student
func (s *gradeServiceImpl) GetGradesByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	grades, err := s.gradeRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// DeleteGrade deletes a grade by ID
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid grade ID", apperrors.ErrValidationFailed)
	}

	err := s.gradeRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrGradeNotFound) {
			return err
		}
		return fmt.Errorf("error deleting grade: %w", err)
	}
	return nil
}
