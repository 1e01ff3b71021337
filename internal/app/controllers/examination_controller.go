package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// ExaminationController handles the examination timetable
type ExaminationController struct {
	exams services.ExaminationService
}

// NewExaminationController creates a new ExaminationController
func NewExaminationController(exams services.ExaminationService) *ExaminationController {
	return &ExaminationController{exams: exams}
}

// GetExaminations lists the timetable
// @Summary List examinations
// @Tags examinations
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Examination}
// @Router /examinations [get]
func (c *ExaminationController) GetExaminations(ctx *gin.Context) {
	exams, err := c.exams.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(exams))
}

// CreateExamination schedules an examination
// @Summary Add an examination
// @Tags examinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExaminationRequest true "Examination"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.Envelope "Invalid examination data"
// @Router /examinations [post]
func (c *ExaminationController) CreateExamination(ctx *gin.Context) {
	var req dto.ExaminationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.exams.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Examination added successfully", "exam_id", id))
}

// UpdateExamination reschedules an examination
// @Summary Update an examination
// @Tags examinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Examination ID"
// @Param request body dto.ExaminationRequest true "Examination"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Examination not found"
// @Router /examinations/{id} [put]
func (c *ExaminationController) UpdateExamination(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ExaminationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.exams.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Done("Examination updated successfully"))
}
