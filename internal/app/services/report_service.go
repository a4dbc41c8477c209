package services

import (
	"context"
	"fmt"

	"github.com/mertkaya/gradekeeper/internal/app/repositories"
)

// TopStudentMinAvg is the average-grade threshold of the top students report.
const TopStudentMinAvg = 4.0

// reportRepository abstracts the aggregate report queries.
type reportRepository interface {
	FacultyAverages(ctx context.Context) ([]*repositories.FacultyAverageRow, error)
	TopStudents(ctx context.Context, minAvg float64) ([]*repositories.TopStudentRow, error)
	CourseStats(ctx context.Context) ([]*repositories.CourseStatsRow, error)
}

// ReportService defines the interface for the read-only aggregate reports.
// Every report is a pure read with no side effects.
type ReportService interface {
	FacultyAverages(ctx context.Context) ([]*repositories.FacultyAverageRow, error)
	TopStudents(ctx context.Context) ([]*repositories.TopStudentRow, error)
	CourseStats(ctx context.Context) ([]*repositories.CourseStatsRow, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo reportRepository
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo reportRepository) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
	}
}

// FacultyAverages returns the average grade per faculty, best first
func (s *reportServiceImpl) FacultyAverages(ctx context.Context) ([]*repositories.FacultyAverageRow, error) {
	report, err := s.reportRepo.FacultyAverages(ctx)
	if err != nil {
		return nil, fmt.Errorf("error running faculty averages report: %w", err)
	}
	return report, nil
}

// TopStudents returns students with an average grade above the threshold
func (s *reportServiceImpl) TopStudents(ctx context.Context) ([]*repositories.TopStudentRow, error) {
	report, err := s.reportRepo.TopStudents(ctx, TopStudentMinAvg)
	if err != nil {
		return nil, fmt.Errorf("error running top students report: %w", err)
	}
	return report, nil
}

// CourseStats returns per-course grade counts and averages
func (s *reportServiceImpl) CourseStats(ctx context.Context) ([]*repositories.CourseStatsRow, error) {
	report, err := s.reportRepo.CourseStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error running course stats report: %w", err)
	}
	return report, nil
}
