package dto

// FacultyAverageResponse is one row of the average-grade-per-faculty report.
type FacultyAverageResponse struct {
	FacultyID   int64   `json:"facultyId"`
	FacultyName string  `json:"facultyName"`
	AvgGrade    float64 `json:"avgGrade"`
	GradeCount  int64   `json:"gradeCount"`
}

// TopStudentResponse is one row of the students-above-4.0 report.
type TopStudentResponse struct {
	StudentID  int64   `json:"studentId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	AvgGrade   float64 `json:"avgGrade"`
	GradeCount int64   `json:"gradeCount"`
}

// CourseStatsResponse is one row of the per-course grade statistics report.
type CourseStatsResponse struct {
	CourseID   int64   `json:"courseId"`
	CourseName string  `json:"courseName"`
	GradeCount int64   `json:"gradeCount"`
	AvgGrade   float64 `json:"avgGrade"`
}

// SeedResultResponse reports the row counts produced by the data generator.
type SeedResultResponse struct {
	Faculties int `json:"faculties"`
	Courses   int `json:"courses"`
	Students  int `json:"students"`
	Grades    int `json:"grades"`
}
