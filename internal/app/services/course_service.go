package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
	"github.com/mertkaya/gradekeeper/internal/pkg/validation"
)

// courseRepository abstracts the persistence layer for course operations.
type courseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	creditsOK := validation.NewNumericValidation(course.Credits).
		WithMin(validation.CreditsMin).
		WithMax(validation.CreditsMax).
		Validate()
	if !creditsOK {
		return fmt.Errorf("%w: credits must be between %d and %d",
			apperrors.ErrValidationFailed, validation.CreditsMin, validation.CreditsMax)
	}

	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := s.validateCourse(course); err != nil {
		return 0, err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	err := s.courseRepo.Update(ctx, course)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return err
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrCourseHasGrades) {
			return err
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
