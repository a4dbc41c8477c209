package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

type fakeGradeRepo struct {
	grades map[int64]*models.Grade
	nextID int64
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{grades: make(map[int64]*models.Grade), nextID: 1}
}

func (f *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) (int64, error) {
	id := f.nextID
	f.nextID++
	copied := *grade
	copied.ID = id
	f.grades[id] = &copied
	return id, nil
}

func (f *fakeGradeRepo) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := f.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return grade, nil
}

func (f *fakeGradeRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Grade, error) {
	var out []*models.Grade
	for _, grade := range f.grades {
		if grade.StudentID == studentID {
			out = append(out, grade)
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.grades[id]; !ok {
		return apperrors.ErrGradeNotFound
	}
	delete(f.grades, id)
	return nil
}

type fakeChecker struct {
	existing map[int64]bool
}

func (f *fakeChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func validGrade() *models.Grade {
	return &models.Grade{
		StudentID: 1,
		CourseID:  1,
		Grade:     5,
		ExamDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newGradeService(students, courses map[int64]bool) (GradeService, *fakeGradeRepo) {
	repo := newFakeGradeRepo()
	svc := NewGradeService(repo, &fakeChecker{existing: students}, &fakeChecker{existing: courses})
	return svc, repo
}

func TestCreateGrade(t *testing.T) {
	svc, _ := newGradeService(map[int64]bool{1: true}, map[int64]bool{1: true})

	id, err := svc.CreateGrade(context.Background(), validGrade())
	if err != nil {
		t.Fatalf("CreateGrade() error = %v", err)
	}
	if id != 1 {
		t.Errorf("CreateGrade() id = %d, want 1", id)
	}
}

func TestCreateGradeBounds(t *testing.T) {
	for _, value := range []int{0, -1, 6, 100} {
		svc, repo := newGradeService(map[int64]bool{1: true}, map[int64]bool{1: true})

		grade := validGrade()
		grade.Grade = value

		_, err := svc.CreateGrade(context.Background(), grade)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("CreateGrade(grade=%d) error = %v, want ErrValidationFailed", value, err)
		}
		if len(repo.grades) != 0 {
			t.Errorf("CreateGrade(grade=%d) persisted an out-of-range grade", value)
		}
	}
}

func TestCreateGradeUnknownStudent(t *testing.T) {
	svc, _ := newGradeService(map[int64]bool{}, map[int64]bool{1: true})

	_, err := svc.CreateGrade(context.Background(), validGrade())
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("CreateGrade() error = %v, want ErrStudentNotFound", err)
	}
}

func TestCreateGradeUnknownCourse(t *testing.T) {
	svc, _ := newGradeService(map[int64]bool{1: true}, map[int64]bool{})

	_, err := svc.CreateGrade(context.Background(), validGrade())
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("CreateGrade() error = %v, want ErrCourseNotFound", err)
	}
}

func TestCreateGradeMissingExamDate(t *testing.T) {
	svc, _ := newGradeService(map[int64]bool{1: true}, map[int64]bool{1: true})

	grade := validGrade()
	grade.ExamDate = time.Time{}

	_, err := svc.CreateGrade(context.Background(), grade)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("CreateGrade() error = %v, want ErrValidationFailed", err)
	}
}

func TestGetGradesByStudent(t *testing.T) {
	svc, _ := newGradeService(map[int64]bool{1: true, 2: true}, map[int64]bool{1: true})

	for _, studentID := range []int64{1, 1, 2} {
		grade := validGrade()
		grade.StudentID = studentID
		if _, err := svc.CreateGrade(context.Background(), grade); err != nil {
			t.Fatalf("CreateGrade() error = %v", err)
		}
	}

	grades, err := svc.GetGradesByStudent(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetGradesByStudent() error = %v", err)
	}
	if len(grades) != 2 {
		t.Errorf("GetGradesByStudent(1) returned %d grades, want 2", len(grades))
	}
}

func TestDeleteGradeNotFound(t *testing.T) {
	svc, _ := newGradeService(nil, nil)

	err := svc.DeleteGrade(context.Background(), 7)
	if !errors.Is(err, apperrors.ErrGradeNotFound) {
		t.Errorf("DeleteGrade() error = %v, want ErrGradeNotFound", err)
	}
}
