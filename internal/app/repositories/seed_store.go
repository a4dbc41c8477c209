package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mertkaya/gradekeeper/internal/app/models"
)

// SeedStore gives the data generator transactional access to the four
// tables. It runs on a pgx.Tx so an entire generator run commits or rolls
// back as one unit; it implements seed.Store.
type SeedStore struct {
	tx pgx.Tx
	sb squirrel.StatementBuilderType
}

// NewSeedStore creates a SeedStore bound to the given transaction.
func NewSeedStore(tx pgx.Tx) *SeedStore {
	return &SeedStore{
		tx: tx,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Reset destructively clears all four tables and restarts their identity
// counters. Truncating every referencing table in one statement avoids the
// need for CASCADE.
func (s *SeedStore) Reset(ctx context.Context) error {
	_, err := s.tx.Exec(ctx, `TRUNCATE grades, students, courses, faculties RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("error truncating tables: %w", err)
	}
	return nil
}

// InsertFaculty inserts a faculty and returns its assigned id.
func (s *SeedStore) InsertFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := s.sb.Insert("faculties").
		Columns("name", "dean").
		Values(faculty.Name, faculty.Dean).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert faculty query: %w", err)
	}

	var id int64
	if err := s.tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting faculty %q: %w", faculty.Name, err)
	}
	return id, nil
}

// InsertCourse inserts a course and returns its assigned id.
func (s *SeedStore) InsertCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := s.sb.Insert("courses").
		Columns("name", "description", "credits").
		Values(course.Name, course.Description, course.Credits).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert course query: %w", err)
	}

	var id int64
	if err := s.tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting course %q: %w", course.Name, err)
	}
	return id, nil
}

// InsertStudent inserts a student and returns its assigned id. The email
// trigger and check constraints apply inside the transaction.
func (s *SeedStore) InsertStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := s.sb.Insert("students").
		Columns("first_name", "last_name", "email", "faculty_id", "enrollment_year").
		Values(student.FirstName, student.LastName, student.Email, student.FacultyID, student.EnrollmentYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert student query: %w", err)
	}

	var id int64
	if err := s.tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting student %s %s: %w", student.FirstName, student.LastName, err)
	}
	return id, nil
}

// InsertGrade inserts a grade and returns its assigned id.
func (s *SeedStore) InsertGrade(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := s.sb.Insert("grades").
		Columns("student_id", "course_id", "grade", "exam_date").
		Values(grade.StudentID, grade.CourseID, grade.Grade, grade.ExamDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert grade query: %w", err)
	}

	var id int64
	if err := s.tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting grade: %w", err)
	}
	return id, nil
}
