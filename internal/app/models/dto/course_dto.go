package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits" binding:"required"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits" binding:"required"`
}

// CourseResponse represents course information
type CourseResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}
