package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
	"github.com/mertkaya/gradekeeper/internal/pkg/validation"
)

// studentRepository abstracts the persistence layer for student operations.
type studentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, facultyID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// facultyChecker reports whether a faculty exists.
type facultyChecker interface {
	FacultyExists(ctx context.Context, id int64) (bool, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, facultyID int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentRepository
	facultyRepo facultyChecker
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentRepository, facultyRepo facultyChecker) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
	}
}

// validateStudent validates student data before database operations. A nil
// email is always accepted; a non-nil email is checked against the standard
// address pattern on every insert and update.
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}

	if student.Email != nil && !validation.ValidEmail(*student.Email) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, *student.Email)
	}

	yearOK := validation.NewNumericValidation(student.EnrollmentYear).
		WithMin(validation.EnrollmentYearMin).
		WithMax(validation.EnrollmentYearMax).
		Validate()
	if !yearOK {
		return fmt.Errorf("%w: enrollment year must be between %d and %d",
			apperrors.ErrValidationFailed, validation.EnrollmentYearMin, validation.EnrollmentYearMax)
	}

	if student.FacultyID <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	return nil
}

// checkFacultyExists verifies the referenced faculty before a write so the
// caller gets a clean not-found error instead of a raw constraint failure.
func (s *studentServiceImpl) checkFacultyExists(ctx context.Context, facultyID int64) error {
	exists, err := s.facultyRepo.FacultyExists(ctx, facultyID)
	if err != nil {
		return fmt.Errorf("error checking faculty existence: %w", err)
	}
	if !exists {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	if err := s.checkFacultyExists(ctx, student.FacultyID); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrFacultyNotFound, apperrors.ErrInvalidEmail) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves all students, optionally filtered by faculty
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, facultyID int64) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.checkFacultyExists(ctx, student.FacultyID); err != nil {
		return err
	}

	err := s.studentRepo.Update(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrEmailAlreadyExists, apperrors.ErrInvalidEmail) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentHasGrades) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
