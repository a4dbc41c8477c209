package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaya/gradekeeper/internal/pkg/logger"
)

// FacultyAverageRow is one row of the average-grade-per-faculty report.
type FacultyAverageRow struct {
	FacultyID   int64
	FacultyName string
	AvgGrade    float64
	GradeCount  int64
}

// TopStudentRow is one row of the students-above-threshold report.
type TopStudentRow struct {
	StudentID  int64
	FirstName  string
	LastName   string
	AvgGrade   float64
	GradeCount int64
}

// CourseStatsRow is one row of the per-course grade statistics report.
type CourseStatsRow struct {
	CourseID   int64
	CourseName string
	GradeCount int64
	AvgGrade   float64
}

// ReportRepository runs the read-only aggregate report queries.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

var reportBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Averages are rounded to two decimals in SQL. Every report carries a
// deterministic secondary sort key (id ASC) so tied aggregates order
// reproducibly.

func facultyAverageQuery() (string, []interface{}, error) {
	return reportBuilder.
		Select(
			"f.id",
			"f.name",
			"ROUND(AVG(g.grade)::numeric, 2) AS avg_grade",
			"COUNT(g.id) AS grade_count",
		).
		From("faculties f").
		Join("students s ON s.faculty_id = f.id").
		Join("grades g ON g.student_id = s.id").
		GroupBy("f.id", "f.name").
		OrderBy("avg_grade DESC", "f.id ASC").
		ToSql()
}

func topStudentsQuery(minAvg float64) (string, []interface{}, error) {
	return reportBuilder.
		Select(
			"s.id",
			"s.first_name",
			"s.last_name",
			"ROUND(AVG(g.grade)::numeric, 2) AS avg_grade",
			"COUNT(g.id) AS grade_count",
		).
		From("students s").
		Join("grades g ON g.student_id = s.id").
		GroupBy("s.id", "s.first_name", "s.last_name").
		Having("AVG(g.grade) > ?", minAvg).
		OrderBy("avg_grade DESC", "s.id ASC").
		ToSql()
}

func courseStatsQuery() (string, []interface{}, error) {
	return reportBuilder.
		Select(
			"c.id",
			"c.name",
			"COUNT(g.id) AS grade_count",
			"ROUND(AVG(g.grade)::numeric, 2) AS avg_grade",
		).
		From("courses c").
		Join("grades g ON g.course_id = c.id").
		GroupBy("c.id", "c.name").
		OrderBy("grade_count DESC", "c.id ASC").
		ToSql()
}

// FacultyAverages returns the average grade per faculty, best first.
func (r *ReportRepository) FacultyAverages(ctx context.Context) ([]*FacultyAverageRow, error) {
	sql, args, err := facultyAverageQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building faculty averages SQL")
		return nil, fmt.Errorf("failed to build faculty averages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing faculty averages query")
		return nil, fmt.Errorf("error querying faculty averages: %w", err)
	}
	defer rows.Close()

	report := []*FacultyAverageRow{}
	for rows.Next() {
		row := &FacultyAverageRow{}
		if err := rows.Scan(&row.FacultyID, &row.FacultyName, &row.AvgGrade, &row.GradeCount); err != nil {
			return nil, fmt.Errorf("error scanning faculty average row: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty average rows: %w", err)
	}

	return report, nil
}

// TopStudents returns students whose average grade exceeds minAvg, best first.
func (r *ReportRepository) TopStudents(ctx context.Context, minAvg float64) ([]*TopStudentRow, error) {
	sql, args, err := topStudentsQuery(minAvg)
	if err != nil {
		logger.Error().Err(err).Msg("Error building top students SQL")
		return nil, fmt.Errorf("failed to build top students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing top students query")
		return nil, fmt.Errorf("error querying top students: %w", err)
	}
	defer rows.Close()

	report := []*TopStudentRow{}
	for rows.Next() {
		row := &TopStudentRow{}
		if err := rows.Scan(&row.StudentID, &row.FirstName, &row.LastName, &row.AvgGrade, &row.GradeCount); err != nil {
			return nil, fmt.Errorf("error scanning top student row: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top student rows: %w", err)
	}

	return report, nil
}

// CourseStats returns the grade count and average per course, most graded
// course first.
func (r *ReportRepository) CourseStats(ctx context.Context) ([]*CourseStatsRow, error) {
	sql, args, err := courseStatsQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course stats SQL")
		return nil, fmt.Errorf("failed to build course stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course stats query")
		return nil, fmt.Errorf("error querying course stats: %w", err)
	}
	defer rows.Close()

	report := []*CourseStatsRow{}
	for rows.Next() {
		row := &CourseStatsRow{}
		if err := rows.Scan(&row.CourseID, &row.CourseName, &row.GradeCount, &row.AvgGrade); err != nil {
			return nil, fmt.Errorf("error scanning course stats row: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course stats rows: %w", err)
	}

	return report, nil
}
