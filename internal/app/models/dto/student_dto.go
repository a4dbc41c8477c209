package dto

// CreateStudentRequest represents student creation data. Email is optional;
// when present it must match the standard address pattern (checked by the
// service, not by a binding tag, so the error carries the domain code).
type CreateStudentRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          *string `json:"email,omitempty"`
	FacultyID      int64   `json:"facultyId" binding:"required,gt=0"`
	EnrollmentYear int     `json:"enrollmentYear" binding:"required"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          *string `json:"email,omitempty"`
	FacultyID      int64   `json:"facultyId" binding:"required,gt=0"`
	EnrollmentYear int     `json:"enrollmentYear" binding:"required"`
}

// StudentResponse represents student information
type StudentResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	FacultyID      int64   `json:"facultyId"`
	EnrollmentYear int     `json:"enrollmentYear"`
}

// StudentListResponse represents a list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}
