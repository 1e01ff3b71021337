package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// JobController handles job notifications
type JobController struct {
	jobs services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobs services.JobService) *JobController {
	return &JobController{jobs: jobs}
}

// GetJobs lists active job notifications
// @Summary List job notifications
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Job}
// @Router /jobs [get]
func (c *JobController) GetJobs(ctx *gin.Context) {
	jobs, err := c.jobs.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(jobs))
}

// CreateJob posts a job notification
// @Summary Add a job notification
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobRequest true "Job notification"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.Envelope "Invalid job data"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.JobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.jobs.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Job notification added successfully", "job_id", id))
}

// UpdateJob overwrites a job notification
// @Summary Update a job notification
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.JobRequest true "Job notification"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Job notification not found"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.JobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.jobs.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Done("Job notification updated successfully"))
}

// DeleteJob removes a job notification
// @Summary Delete a job notification
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Envelope
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobs.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Done("Job notification deleted successfully"))
}
