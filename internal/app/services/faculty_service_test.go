package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

type fakeFacultyRepo struct {
	faculties map[int64]*models.Faculty
	nextID    int64

	createErr error
	deleteErr error
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{faculties: make(map[int64]*models.Faculty), nextID: 1}
}

func (f *fakeFacultyRepo) CreateFaculty(_ context.Context, faculty *models.Faculty) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, existing := range f.faculties {
		if existing.Name == faculty.Name {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	copied := *faculty
	copied.ID = id
	f.faculties[id] = &copied
	return id, nil
}

func (f *fakeFacultyRepo) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := f.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

func (f *fakeFacultyRepo) GetAllFaculties(_ context.Context) ([]*models.Faculty, error) {
	out := make([]*models.Faculty, 0, len(f.faculties))
	for _, faculty := range f.faculties {
		out = append(out, faculty)
	}
	return out, nil
}

func (f *fakeFacultyRepo) UpdateFaculty(_ context.Context, faculty *models.Faculty) error {
	if _, ok := f.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	copied := *faculty
	f.faculties[faculty.ID] = &copied
	return nil
}

func (f *fakeFacultyRepo) DeleteFaculty(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	delete(f.faculties, id)
	return nil
}

func TestCreateFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	id, err := svc.CreateFaculty(context.Background(), &models.Faculty{Name: "Physics", Dean: "Anna Orlova"})
	if err != nil {
		t.Fatalf("CreateFaculty() error = %v", err)
	}
	if id != 1 {
		t.Errorf("CreateFaculty() id = %d, want 1", id)
	}
}

func TestCreateFacultyValidation(t *testing.T) {
	tests := []struct {
		name    string
		faculty *models.Faculty
	}{
		{name: "nil faculty", faculty: nil},
		{name: "empty name", faculty: &models.Faculty{Name: " ", Dean: "Anna Orlova"}},
		{name: "empty dean", faculty: &models.Faculty{Name: "Physics", Dean: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFacultyService(newFakeFacultyRepo())
			_, err := svc.CreateFaculty(context.Background(), tt.faculty)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateFaculty() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestCreateFacultyDuplicateName(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	if _, err := svc.CreateFaculty(context.Background(), &models.Faculty{Name: "Physics", Dean: "Anna Orlova"}); err != nil {
		t.Fatalf("CreateFaculty() error = %v", err)
	}
	_, err := svc.CreateFaculty(context.Background(), &models.Faculty{Name: "Physics", Dean: "Pavel Belov"})
	if !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
		t.Errorf("CreateFaculty() error = %v, want ErrFacultyAlreadyExists", err)
	}
}

func TestDeleteFacultyWithStudents(t *testing.T) {
	repo := newFakeFacultyRepo()
	repo.faculties[1] = &models.Faculty{ID: 1, Name: "Physics"}
	repo.deleteErr = apperrors.ErrFacultyHasStudents
	svc := NewFacultyService(repo)

	err := svc.DeleteFaculty(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrFacultyHasStudents) {
		t.Errorf("DeleteFaculty() error = %v, want ErrFacultyHasStudents", err)
	}
}

func TestGetFacultyByIDInvalid(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	if _, err := svc.GetFacultyByID(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("GetFacultyByID(0) error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.GetFacultyByID(context.Background(), 99); !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Errorf("GetFacultyByID(99) error = %v, want ErrFacultyNotFound", err)
	}
}
