package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaya/gradekeeper/internal/app/models"
	"github.com/mertkaya/gradekeeper/internal/pkg/apperrors"
	"github.com/mertkaya/gradekeeper/internal/pkg/dberrors"
	"github.com/mertkaya/gradekeeper/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new grade. A dangling student or course reference
// surfaces as the corresponding not-found sentinel.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "course_id", "grade", "exam_date").
		Values(grade.StudentID, grade.CourseID, grade.Grade, grade.ExamDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			switch dberrors.ConstraintName(err) {
			case "grades_student_id_fkey":
				return 0, apperrors.ErrStudentNotFound
			case "grades_course_id_fkey":
				return 0, apperrors.ErrCourseNotFound
			}
			return 0, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	return id, nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "grade", "exam_date", "created_at").
		From("grades").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get grade by ID SQL")
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	grade := &models.Grade{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Grade, &grade.ExamDate, &grade.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		logger.Error().Err(err).Int64("gradeID", id).Msg("Error scanning grade row")
		return nil, fmt.Errorf("error getting grade by ID: %w", err)
	}

	return grade, nil
}

// GetByStudentID retrieves all grades recorded for a student
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "grade", "exam_date", "created_at").
		From("grades").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("exam_date ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get grades by student SQL")
		return nil, fmt.Errorf("failed to build get grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get grades by student query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []*models.Grade{}
	for rows.Next() {
		grade := &models.Grade{}
		if err := rows.Scan(
			&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Grade, &grade.ExamDate, &grade.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// Delete deletes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("grades").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete grade SQL")
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("gradeID", id).Msg("Error executing delete grade query")
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
