package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/rs/zerolog"
)

// Dataset shape produced by a generator run.
const (
	// StudentCount is the number of synthetic students per run.
	StudentCount = 50
	// GradeCount is the number of synthetic grades per run.
	GradeCount = 200

	// studentFacultyPool limits student assignment to the first N inserted
	// faculties, leaving the remainder empty on purpose.
	studentFacultyPool = 3

	enrollmentYearMin = 2020
	enrollmentYearMax = 2024

	// examWindowDays is the width of the exam date window.
	examWindowDays = 300
)

// examWindowStart is the first possible exam date.
var examWindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Store is the persistence surface the generator writes through. Reset and
// all inserts are expected to run inside one transaction supplied by the
// caller; a failed run must leave prior data intact.
type Store interface {
	Reset(ctx context.Context) error
	InsertFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	InsertCourse(ctx context.Context, course *models.Course) (int64, error)
	InsertStudent(ctx context.Context, student *models.Student) (int64, error)
	InsertGrade(ctx context.Context, grade *models.Grade) (int64, error)
}

// Result reports the row counts of a completed run.
type Result struct {
	Faculties int
	Courses   int
	Students  int
	Grades    int
}

// Seeder wipes and repopulates the dataset with synthetic rows. The random
// source is injected so tests can seed it deterministically; production
// callers pass an unseeded time-based source. A Seeder is not safe for
// concurrent use.
type Seeder struct {
	store Store
	rng   *rand.Rand
	lgr   zerolog.Logger
}

// NewSeeder creates a Seeder writing through store with randomness from rng.
func NewSeeder(store Store, rng *rand.Rand, lgr zerolog.Logger) *Seeder {
	return &Seeder{
		store: store,
		rng:   rng,
		lgr:   lgr,
	}
}

// defaultFaculties is the fixed faculty list inserted on every run.
func defaultFaculties() []*models.Faculty {
	return []*models.Faculty{
		{Name: "Faculty of Computer Science", Dean: "Elena Sokolova"},
		{Name: "Faculty of Economics", Dean: "Mikhail Orlov"},
		{Name: "Faculty of Law", Dean: "Anna Petrova"},
		{Name: "Faculty of Linguistics", Dean: "Sergei Ivanov"},
	}
}

// defaultCourses is the fixed course list inserted on every run.
func defaultCourses() []*models.Course {
	strPtr := func(s string) *string { return &s }
	return []*models.Course{
		{Name: "Databases", Description: strPtr("Relational model, SQL and transactions"), Credits: 5},
		{Name: "Operating Systems", Description: strPtr("Processes, memory and file systems"), Credits: 4},
		{Name: "Linear Algebra", Description: strPtr("Vector spaces and matrices"), Credits: 6},
		{Name: "Microeconomics", Description: strPtr("Supply, demand and market structures"), Credits: 4},
		{Name: "Civil Law", Description: strPtr("Contracts and obligations"), Credits: 3},
		{Name: "English for Academics", Description: strPtr("Academic reading and writing"), Credits: 2},
		{Name: "Statistics", Description: strPtr("Probability and statistical inference"), Credits: 5},
	}
}

// Run clears all four tables and repopulates them. Random references are
// drawn from the ids the store actually assigned, never from literal
// ranges, so resizing the fixed lists cannot produce dangling references.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	s.lgr.Info().Msg("Resetting dataset for sample data generation...")
	if err := s.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("resetting dataset: %w", err)
	}

	facultyIDs, err := s.insertFaculties(ctx)
	if err != nil {
		return nil, err
	}

	courseIDs, err := s.insertCourses(ctx)
	if err != nil {
		return nil, err
	}

	studentIDs, err := s.insertStudents(ctx, facultyIDs)
	if err != nil {
		return nil, err
	}

	gradeCount, err := s.insertGrades(ctx, studentIDs, courseIDs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Faculties: len(facultyIDs),
		Courses:   len(courseIDs),
		Students:  len(studentIDs),
		Grades:    gradeCount,
	}

	s.lgr.Info().
		Int("faculties", result.Faculties).
		Int("courses", result.Courses).
		Int("students", result.Students).
		Int("grades", result.Grades).
		Msg("Sample data generation finished")

	return result, nil
}

func (s *Seeder) insertFaculties(ctx context.Context) ([]int64, error) {
	faculties := defaultFaculties()
	ids := make([]int64, 0, len(faculties))
	for _, faculty := range faculties {
		id, err := s.store.InsertFaculty(ctx, faculty)
		if err != nil {
			return nil, fmt.Errorf("inserting faculty %q: %w", faculty.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Seeder) insertCourses(ctx context.Context) ([]int64, error) {
	courses := defaultCourses()
	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		id, err := s.store.InsertCourse(ctx, course)
		if err != nil {
			return nil, fmt.Errorf("inserting course %q: %w", course.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Seeder) insertStudents(ctx context.Context, facultyIDs []int64) ([]int64, error) {
	pool := studentFacultyPool
	if pool > len(facultyIDs) {
		pool = len(facultyIDs)
	}
	if pool == 0 {
		return nil, fmt.Errorf("no faculties available for student assignment")
	}

	ids := make([]int64, 0, StudentCount)
	for i := 1; i <= StudentCount; i++ {
		email := fmt.Sprintf("student%d@edu.ru", i)
		student := &models.Student{
			FirstName:      fmt.Sprintf("Student%d", i),
			LastName:       fmt.Sprintf("Surname%d", i),
			Email:          &email,
			FacultyID:      facultyIDs[s.rng.Intn(pool)],
			EnrollmentYear: enrollmentYearMin + s.rng.Intn(enrollmentYearMax-enrollmentYearMin+1),
		}
		id, err := s.store.InsertStudent(ctx, student)
		if err != nil {
			return nil, fmt.Errorf("inserting student %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Seeder) insertGrades(ctx context.Context, studentIDs, courseIDs []int64) (int, error) {
	if len(studentIDs) == 0 || len(courseIDs) == 0 {
		return 0, fmt.Errorf("no students or courses available for grade generation")
	}

	for i := 0; i < GradeCount; i++ {
		grade := &models.Grade{
			StudentID: studentIDs[s.rng.Intn(len(studentIDs))],
			CourseID:  courseIDs[s.rng.Intn(len(courseIDs))],
			Grade:     1 + s.rng.Intn(5),
			ExamDate:  examWindowStart.AddDate(0, 0, s.rng.Intn(examWindowDays)),
		}
		if _, err := s.store.InsertGrade(ctx, grade); err != nil {
			return 0, fmt.Errorf("inserting grade %d: %w", i+1, err)
		}
	}
	return GradeCount, nil
}
