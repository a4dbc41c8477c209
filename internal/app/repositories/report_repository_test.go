package repositories

import (
	"strings"
	"testing"
)

func TestFacultyAverageQueryShape(t *testing.T) {
	sql, args, err := facultyAverageQuery()
	if err != nil {
		t.Fatalf("building query: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if !strings.Contains(sql, "ROUND(AVG(g.grade)::numeric, 2)") {
		t.Errorf("average must be rounded to 2 decimals, got:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY avg_grade DESC, f.id ASC") {
		t.Errorf("missing deterministic ordering, got:\n%s", sql)
	}
	if !strings.Contains(sql, "GROUP BY f.id, f.name") {
		t.Errorf("missing group by, got:\n%s", sql)
	}
}

func TestTopStudentsQueryShape(t *testing.T) {
	sql, args, err := topStudentsQuery(4.0)
	if err != nil {
		t.Fatalf("building query: %v", err)
	}
	if len(args) != 1 || args[0] != 4.0 {
		t.Errorf("threshold must be bound as an argument, got %v", args)
	}
	if !strings.Contains(sql, "HAVING AVG(g.grade) > $1") {
		t.Errorf("missing HAVING clause, got:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY avg_grade DESC, s.id ASC") {
		t.Errorf("missing deterministic ordering, got:\n%s", sql)
	}
}

func TestCourseStatsQueryShape(t *testing.T) {
	sql, _, err := courseStatsQuery()
	if err != nil {
		t.Fatalf("building query: %v", err)
	}
	if !strings.Contains(sql, "COUNT(g.id) AS grade_count") {
		t.Errorf("missing grade count, got:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY grade_count DESC, c.id ASC") {
		t.Errorf("missing deterministic ordering, got:\n%s", sql)
	}
}
