package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
)

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64

	createErr error
	updateErr error
	deleteErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	copied := *student
	copied.ID = id
	f.students[id] = &copied
	return id, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context, facultyID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range f.students {
		if facultyID > 0 && student.FacultyID != facultyID {
			continue
		}
		out = append(out, student)
	}
	return out, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeFacultyChecker struct {
	existing map[int64]bool
	err      error
}

func (f *fakeFacultyChecker) FacultyExists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[id], nil
}

func strPtr(s string) *string { return &s }

func validStudent() *models.Student {
	return &models.Student{
		FirstName:      "Ivan",
		LastName:       "Petrov",
		Email:          strPtr("ivan.petrov@edu.ru"),
		FacultyID:      1,
		EnrollmentYear: 2022,
	}
}

func TestCreateStudent(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &fakeFacultyChecker{existing: map[int64]bool{1: true}})

	id, err := svc.CreateStudent(context.Background(), validStudent())
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if id != 1 {
		t.Errorf("CreateStudent() id = %d, want 1", id)
	}
}

func TestCreateStudentValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Student)
		wantErr error
	}{
		{
			name:    "empty first name",
			mutate:  func(s *models.Student) { s.FirstName = "  " },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "empty last name",
			mutate:  func(s *models.Student) { s.LastName = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			mutate:  func(s *models.Student) { s.Email = strPtr("not-an-email") },
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name:    "email without dot in domain",
			mutate:  func(s *models.Student) { s.Email = strPtr("ivan@localhost") },
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name:    "enrollment year too early",
			mutate:  func(s *models.Student) { s.EnrollmentYear = 1999 },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "enrollment year too late",
			mutate:  func(s *models.Student) { s.EnrollmentYear = 2025 },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "zero faculty ID",
			mutate:  func(s *models.Student) { s.FacultyID = 0 },
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStudentRepo()
			svc := NewStudentService(repo, &fakeFacultyChecker{existing: map[int64]bool{1: true}})

			student := validStudent()
			tt.mutate(student)

			_, err := svc.CreateStudent(context.Background(), student)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateStudent() error = %v, want %v", err, tt.wantErr)
			}
			if len(repo.students) != 0 {
				t.Errorf("invalid student was persisted")
			}
		})
	}
}

func TestCreateStudentNilEmailAllowed(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &fakeFacultyChecker{existing: map[int64]bool{1: true}})

	student := validStudent()
	student.Email = nil

	if _, err := svc.CreateStudent(context.Background(), student); err != nil {
		t.Fatalf("CreateStudent() with nil email error = %v", err)
	}
}

func TestCreateStudentUnknownFaculty(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &fakeFacultyChecker{existing: map[int64]bool{}})

	_, err := svc.CreateStudent(context.Background(), validStudent())
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Errorf("CreateStudent() error = %v, want ErrFacultyNotFound", err)
	}
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.createErr = apperrors.ErrEmailAlreadyExists
	svc := NewStudentService(repo, &fakeFacultyChecker{existing: map[int64]bool{1: true}})

	_, err := svc.CreateStudent(context.Background(), validStudent())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("CreateStudent() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUpdateStudentRevalidatesEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	checker := &fakeFacultyChecker{existing: map[int64]bool{1: true}}
	svc := NewStudentService(repo, checker)

	id, err := svc.CreateStudent(context.Background(), validStudent())
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	updated := validStudent()
	updated.ID = id
	updated.Email = strPtr("broken@@edu.ru")

	err = svc.UpdateStudent(context.Background(), updated)
	if !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Errorf("UpdateStudent() error = %v, want ErrInvalidEmail", err)
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), &fakeFacultyChecker{})

	_, err := svc.GetStudentByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("GetStudentByID() error = %v, want ErrStudentNotFound", err)
	}
}

func TestDeleteStudentWithGrades(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.students[1] = &models.Student{ID: 1}
	repo.deleteErr = apperrors.ErrStudentHasGrades
	svc := NewStudentService(repo, &fakeFacultyChecker{})

	err := svc.DeleteStudent(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrStudentHasGrades) {
		t.Errorf("DeleteStudent() error = %v, want ErrStudentHasGrades", err)
	}
}

func TestGetAllStudentsFacultyFilter(t *testing.T) {
	repo := newFakeStudentRepo()
	checker := &fakeFacultyChecker{existing: map[int64]bool{1: true, 2: true}}
	svc := NewStudentService(repo, checker)

	for _, facultyID := range []int64{1, 1, 2} {
		student := validStudent()
		student.Email = nil
		student.FacultyID = facultyID
		if _, err := svc.CreateStudent(context.Background(), student); err != nil {
			t.Fatalf("CreateStudent() error = %v", err)
		}
	}

	students, err := svc.GetAllStudents(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAllStudents() error = %v", err)
	}
	if len(students) != 2 {
		t.Errorf("GetAllStudents(facultyID=1) returned %d students, want 2", len(students))
	}

	all, err := svc.GetAllStudents(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetAllStudents() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetAllStudents(facultyID=0) returned %d students, want 3", len(all))
	}
}
