package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mertkaya/gradekeeper/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	gradeController *controllers.GradeController,
	reportController *controllers.ReportController,
	adminController *controllers.AdminController,
) {
	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Faculty routes
	faculties := v1.Group("/faculties")
	{
		faculties.POST("", facultyController.CreateFaculty)
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
		faculties.PUT("/:id", facultyController.UpdateFaculty)
		faculties.DELETE("/:id", facultyController.DeleteFaculty)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/grades", gradeController.GetGradesByStudent)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Grade routes
	grades := v1.Group("/grades")
	{
		grades.POST("", gradeController.CreateGrade)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Report routes (read only)
	reports := v1.Group("/reports")
	{
		reports.GET("/faculty-averages", reportController.FacultyAverages)
		reports.GET("/top-students", reportController.TopStudents)
		reports.GET("/course-stats", reportController.CourseStats)
	}

	// Administrative routes
	admin := v1.Group("/admin")
	{
		admin.POST("/seed", adminController.SeedDatabase)
	}
}
