package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

// facultyRepository abstracts the persistence layer for faculty operations.
type facultyRepository interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo facultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo facultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty validates faculty data before database operations
func (s *facultyServiceImpl) validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.Dean) == "" {
		return fmt.Errorf("%w: dean cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	if err := s.validateFaculty(faculty); err != nil {
		return 0, err
	}

	id, err := s.facultyRepo.CreateFaculty(ctx, faculty)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}
	return id, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	faculty, err := s.facultyRepo.GetFacultyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	faculties, err := s.facultyRepo.GetAllFaculties(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// UpdateFaculty updates an existing faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := s.validateFaculty(faculty); err != nil {
		return err
	}

	if faculty.ID <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	err := s.facultyRepo.UpdateFaculty(ctx, faculty)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrFacultyAlreadyExists) {
			return err
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}
	return nil
}

// DeleteFaculty deletes a faculty by ID. Deletion is blocked while students
// reference the faculty; the error surfaces to the caller unchanged.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	err := s.facultyRepo.DeleteFaculty(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrFacultyHasStudents) {
			return err
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
