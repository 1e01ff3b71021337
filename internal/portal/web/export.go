package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/views"
)

const (
	placementSheet = "Placements"
	xlsxType       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var placementHeader = []interface{}{
	"Department", "Code", "Academic Year", "Students Placed", "Total Students",
	"Placement Percentage", "Highest Package (INR)", "Average Package (INR)",
}

// ExportPlacements downloads the placement statistics as a spreadsheet.
func (h *Handler) ExportPlacements(c *gin.Context) {
	res := client.Fetch[[]models.Placement](c.Request.Context(), h.api, views.Placements.Endpoint)
	switch res.Kind {
	case client.Failure:
		c.String(http.StatusBadGateway, res.Message)
		return
	case client.Transport:
		h.logger.Warn().Err(res.Err).Msg("Placement export fetch failed")
		c.String(http.StatusBadGateway, views.Placements.FetchFailed)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="placements.xlsx"`)
	c.Header("Content-Type", xlsxType)
	if err := writePlacements(c.Writer, res.Data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write placement export")
		_ = c.Error(err)
	}
}

func writePlacements(w io.Writer, placements []models.Placement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", placementSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(placementSheet, "A1", &placementHeader); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(placementSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, p := range placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			p.DeptName, p.DeptCode, p.AcademicYear, p.StudentsPlaced, p.TotalStudents,
			views.Percentage(p), packageCell(p.HighestPackage), packageCell(p.AveragePackage),
		}
		if err := f.SetSheetRow(placementSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(placementSheet, "A", "H", 20); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// packageCell leaves the cell blank for a package the department never reported.
func packageCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
