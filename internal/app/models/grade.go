package models

import "time"

// Grade represents one exam event: a 1-5 scored result for a student's
// exam in a specific course. Many grades per student and per course.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Grade     int       `json:"grade" db:"grade"`
	ExamDate  time.Time `json:"examDate" db:"exam_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
