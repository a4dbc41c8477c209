package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	FirstName      string    `json:"firstName" db:"first_name" example:"Ivan"`
	LastName       string    `json:"lastName" db:"last_name" example:"Petrov"`
	Email          *string   `json:"email,omitempty" db:"email" example:"ivan.petrov@edu.ru"` // Nullable, unique when present
	FacultyID      int64     `json:"facultyId" db:"faculty_id" example:"1"`
	EnrollmentYear int       `json:"enrollmentYear" db:"enrollment_year" example:"2022"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Faculty *Faculty `json:"faculty,omitempty"`
}
