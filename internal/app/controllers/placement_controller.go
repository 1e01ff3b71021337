package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// PlacementController handles placement statistics
type PlacementController struct {
	placements services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placements services.PlacementService) *PlacementController {
	return &PlacementController{placements: placements}
}

// GetPlacements lists placement records
// @Summary List placement records
// @Tags placements
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]models.Placement}
// @Router /placements [get]
func (c *PlacementController) GetPlacements(ctx *gin.Context) {
	placements, err := c.placements.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(placements))
}

// CreatePlacement adds a placement record
// @Summary Add a placement record
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PlacementRequest true "Placement record"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.Envelope "Invalid placement data"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 403 {object} dto.Envelope "Not a teacher"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.PlacementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.placements.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Placement record added successfully", "placement_id", id))
}

// UpdatePlacement overwrites a placement record
// @Summary Update a placement record
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Param request body dto.PlacementRequest true "Placement record"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Placement record not found"
// @Router /placements/{id} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.PlacementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.placements.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Done("Placement record updated successfully"))
}

// DeletePlacement removes a placement record
// @Summary Delete a placement record
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Placement record not found"
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.placements.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Done("Placement record deleted successfully"))
}
