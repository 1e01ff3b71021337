package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// DirectoryController serves the public listings
type DirectoryController struct {
	directory services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directory services.DirectoryService) *DirectoryController {
	return &DirectoryController{directory: directory}
}

// SearchStudent looks a student up by roll number
// @Summary Find a student
// @Tags students
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Success 200 {object} dto.Envelope{data=models.Student}
// @Failure 404 {object} dto.Envelope "Student not found"
// @Router /students/search/{rollNumber} [get]
func (c *DirectoryController) SearchStudent(ctx *gin.Context) {
	student, err := c.directory.FindStudent(ctx.Request.Context(), ctx.Param("rollNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(student))
}

// GetFaculty lists faculty grouped by department name
// @Summary Faculty by department
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.Envelope{data=models.FacultyByDepartment}
// @Router /faculty [get]
func (c *DirectoryController) GetFaculty(ctx *gin.Context) {
	grouped, err := c.directory.FacultyByDepartment(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(grouped))
}

// GetDepartments lists departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Department}
// @Router /departments [get]
func (c *DirectoryController) GetDepartments(ctx *gin.Context) {
	departments, err := c.directory.Departments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(departments))
}

// GetInternships lists active internships
// @Summary List internships
// @Tags internships
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Internship}
// @Router /internships [get]
func (c *DirectoryController) GetInternships(ctx *gin.Context) {
	internships, err := c.directory.Internships(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(internships))
}

// GetAlumni lists alumni
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Alumnus}
// @Router /alumni [get]
func (c *DirectoryController) GetAlumni(ctx *gin.Context) {
	alumni, err := c.directory.Alumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(alumni))
}
