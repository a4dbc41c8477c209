package seed

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/rs/zerolog"
)

// fakeStore records everything the seeder writes. Assigned ids start at
// idBase per table, deliberately away from 1, to catch any code that
// assumes contiguous ids instead of using the returned ones.
type fakeStore struct {
	idBase int64

	resets   int
	failOn   string
	faculty  []*models.Faculty
	courses  []*models.Course
	students []*models.Student
	grades   []*models.Grade

	facultyIDs []int64
	courseIDs  []int64
	studentIDs []int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{idBase: 100}
}

func (f *fakeStore) Reset(context.Context) error {
	if f.failOn == "reset" {
		return errors.New("storage unavailable")
	}
	f.resets++
	f.faculty = nil
	f.courses = nil
	f.students = nil
	f.grades = nil
	f.facultyIDs = nil
	f.courseIDs = nil
	f.studentIDs = nil
	return nil
}

func (f *fakeStore) InsertFaculty(_ context.Context, faculty *models.Faculty) (int64, error) {
	if f.failOn == "faculty" {
		return 0, errors.New("storage unavailable")
	}
	f.faculty = append(f.faculty, faculty)
	id := f.idBase + int64(len(f.faculty))
	f.facultyIDs = append(f.facultyIDs, id)
	return id, nil
}

func (f *fakeStore) InsertCourse(_ context.Context, course *models.Course) (int64, error) {
	f.courses = append(f.courses, course)
	id := f.idBase + int64(len(f.courses))
	f.courseIDs = append(f.courseIDs, id)
	return id, nil
}

func (f *fakeStore) InsertStudent(_ context.Context, student *models.Student) (int64, error) {
	f.students = append(f.students, student)
	id := f.idBase + int64(len(f.students))
	f.studentIDs = append(f.studentIDs, id)
	return id, nil
}

func (f *fakeStore) InsertGrade(_ context.Context, grade *models.Grade) (int64, error) {
	f.grades = append(f.grades, grade)
	return f.idBase + int64(len(f.grades)), nil
}

func runSeeder(t *testing.T, store *fakeStore, src int64) *Result {
	t.Helper()
	seeder := NewSeeder(store, rand.New(rand.NewSource(src)), zerolog.Nop())
	result, err := seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return result
}

func TestRunProducesExpectedCounts(t *testing.T) {
	store := newFakeStore()
	result := runSeeder(t, store, 1)

	if store.resets != 1 {
		t.Errorf("expected exactly one reset, got %d", store.resets)
	}
	if result.Faculties != 4 || len(store.faculty) != 4 {
		t.Errorf("expected 4 faculties, got %d", len(store.faculty))
	}
	if result.Courses != 7 || len(store.courses) != 7 {
		t.Errorf("expected 7 courses, got %d", len(store.courses))
	}
	if result.Students != StudentCount || len(store.students) != StudentCount {
		t.Errorf("expected %d students, got %d", StudentCount, len(store.students))
	}
	if result.Grades != GradeCount || len(store.grades) != GradeCount {
		t.Errorf("expected %d grades, got %d", GradeCount, len(store.grades))
	}
}

func TestStudentsUseActualFacultyIDs(t *testing.T) {
	store := newFakeStore()
	runSeeder(t, store, 2)

	// Only the first 3 inserted faculties receive students, identified by
	// the ids the store returned (offset from 1 on purpose).
	allowed := map[int64]bool{}
	for _, id := range store.facultyIDs[:3] {
		allowed[id] = true
	}

	for i, student := range store.students {
		if !allowed[student.FacultyID] {
			t.Errorf("student %d assigned faculty id %d outside first 3 inserted (%v)",
				i+1, student.FacultyID, store.facultyIDs[:3])
		}
		if student.EnrollmentYear < 2020 || student.EnrollmentYear > 2024 {
			t.Errorf("student %d enrollment year %d out of [2020,2024]", i+1, student.EnrollmentYear)
		}
		if student.Email == nil {
			t.Errorf("student %d has no email", i+1)
		}
	}
}

func TestGradesReferenceInsertedRows(t *testing.T) {
	store := newFakeStore()
	runSeeder(t, store, 3)

	studentIDs := map[int64]bool{}
	for _, id := range store.studentIDs {
		studentIDs[id] = true
	}
	courseIDs := map[int64]bool{}
	for _, id := range store.courseIDs {
		courseIDs[id] = true
	}

	windowEnd := examWindowStart.AddDate(0, 0, examWindowDays)
	for i, grade := range store.grades {
		if !studentIDs[grade.StudentID] {
			t.Errorf("grade %d references unknown student id %d", i+1, grade.StudentID)
		}
		if !courseIDs[grade.CourseID] {
			t.Errorf("grade %d references unknown course id %d", i+1, grade.CourseID)
		}
		if grade.Grade < 1 || grade.Grade > 5 {
			t.Errorf("grade %d value %d out of [1,5]", i+1, grade.Grade)
		}
		if grade.ExamDate.Before(examWindowStart) || !grade.ExamDate.Before(windowEnd) {
			t.Errorf("grade %d exam date %s outside window [%s, %s)",
				i+1, grade.ExamDate.Format(time.DateOnly),
				examWindowStart.Format(time.DateOnly), windowEnd.Format(time.DateOnly))
		}
	}
}

func TestRerunResetsAndRebuilds(t *testing.T) {
	store := newFakeStore()
	first := runSeeder(t, store, 4)
	second := runSeeder(t, store, 5)

	if store.resets != 2 {
		t.Errorf("expected 2 resets, got %d", store.resets)
	}
	if *first != *second {
		t.Errorf("row counts differ between runs: %+v vs %+v", first, second)
	}
	if len(store.students) != StudentCount || len(store.grades) != GradeCount {
		t.Errorf("second run left %d students, %d grades", len(store.students), len(store.grades))
	}
}

func TestSameSeedYieldsIdenticalDataset(t *testing.T) {
	storeA := newFakeStore()
	storeB := newFakeStore()
	runSeeder(t, storeA, 42)
	runSeeder(t, storeB, 42)

	if !reflect.DeepEqual(storeA.students, storeB.students) {
		t.Error("students differ for identical seeds")
	}
	if !reflect.DeepEqual(storeA.grades, storeB.grades) {
		t.Error("grades differ for identical seeds")
	}
}

func TestRunPropagatesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failOn = "reset"
	seeder := NewSeeder(store, rand.New(rand.NewSource(1)), zerolog.Nop())
	if _, err := seeder.Run(context.Background()); err == nil {
		t.Fatal("expected error when reset fails")
	}

	store = newFakeStore()
	store.failOn = "faculty"
	seeder = NewSeeder(store, rand.New(rand.NewSource(1)), zerolog.Nop())
	if _, err := seeder.Run(context.Background()); err == nil {
		t.Fatal("expected error when faculty insert fails")
	}
}
