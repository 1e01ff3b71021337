// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// Controllers holds every API controller.
type Controllers struct {
	System       *SystemController
	Auth         *AuthController
	Directory    *DirectoryController
	Placements   *PlacementController
	Jobs         *JobController
	Examinations *ExaminationController
}

// NewControllers builds the controllers over the services.
func NewControllers(s *services.Services) *Controllers {
	return &Controllers{
		System:       NewSystemController(),
		Auth:         NewAuthController(s.Auth),
		Directory:    NewDirectoryController(s.Directory),
		Placements:   NewPlacementController(s.Placements),
		Jobs:         NewJobController(s.Jobs),
		Examinations: NewExaminationController(s.Examinations),
	}
}

// SystemController answers the API root and health probes.
type SystemController struct{}

// NewSystemController creates a new SystemController
func NewSystemController() *SystemController {
	return &SystemController{}
}

// Index identifies the API
// @Summary API banner
// @Tags system
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router / [get]
func (c *SystemController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.Done("College Management System API"))
}

// Health reports liveness
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID reads a positive integer path parameter.
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid "+name))
		return 0, false
	}
	return id, true
}
