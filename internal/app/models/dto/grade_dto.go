package dto

// CreateGradeRequest represents grade creation data. ExamDate uses the
// "2006-01-02" date format.
type CreateGradeRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	CourseID  int64  `json:"courseId" binding:"required,gt=0"`
	Grade     int    `json:"grade" binding:"required"`
	ExamDate  string `json:"examDate" binding:"required" example:"2024-06-15"`
}

// GradeResponse represents grade information
type GradeResponse struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	CourseID  int64  `json:"courseId"`
	Grade     int    `json:"grade"`
	ExamDate  string `json:"examDate" example:"2024-06-15"`
}

// GradeListResponse represents a list of grades
type GradeListResponse struct {
	Grades []GradeResponse `json:"grades"`
}
