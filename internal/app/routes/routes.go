package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/controllers"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", c.System.Health)
	router.GET("/ping", func(ctx *gin.Context) { ctx.String(200, "pong") })

	api := router.Group("/api")
	api.GET("/", c.System.Index)

	// --- Public reads ---
	api.GET("/students/search/:rollNumber", c.Directory.SearchStudent)
	api.GET("/faculty", c.Directory.GetFaculty)
	api.GET("/departments", c.Directory.GetDepartments)
	api.GET("/internships", c.Directory.GetInternships)
	api.GET("/alumni", c.Directory.GetAlumni)
	api.GET("/placements", c.Placements.GetPlacements)
	api.GET("/jobs", c.Jobs.GetJobs)
	api.GET("/examinations", c.Examinations.GetExaminations)

	// --- Login ---
	api.POST("/admin/login", c.Auth.AdminLogin)
	api.POST("/teacher/login", c.Auth.TeacherLogin)

	// --- Authenticated mutations ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	teacherOnly := authenticated.Group("")
	teacherOnly.Use(authMiddleware.RequireAnyRole(models.RoleTeacher))
	{
		teacherOnly.POST("/placements", c.Placements.CreatePlacement)
		teacherOnly.PUT("/placements/:id", c.Placements.UpdatePlacement)
		teacherOnly.DELETE("/placements/:id", c.Placements.DeletePlacement)
	}

	staff := authenticated.Group("")
	staff.Use(authMiddleware.RequireAnyRole(models.RoleAdmin, models.RoleTeacher))
	{
		staff.POST("/jobs", c.Jobs.CreateJob)
		staff.PUT("/jobs/:id", c.Jobs.UpdateJob)
		staff.DELETE("/jobs/:id", c.Jobs.DeleteJob)

		staff.POST("/examinations", c.Examinations.CreateExamination)
		staff.PUT("/examinations/:id", c.Examinations.UpdateExamination)
	}
}
