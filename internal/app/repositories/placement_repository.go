package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// PlacementRepository handles placement statistics
type PlacementRepository struct {
	base
}

// List returns placements joined with their department, ordered by department then newest year.
func (r *PlacementRepository) List(ctx context.Context) ([]models.Placement, error) {
	query := r.sb.Select(
		"p.placement_id", "p.dept_id",
		"COALESCE(d.dept_name, '')", "COALESCE(d.dept_code, '')",
		"p.academic_year", "p.students_placed", "p.total_students",
		"p.highest_package", "p.average_package",
	).
		From("placements p").
		LeftJoin("departments d ON p.dept_id = d.dept_id").
		OrderBy("d.dept_name", "p.academic_year DESC")

	return queryRows(ctx, r.base, query, "placements", func(row pgx.Row) (models.Placement, error) {
		var p models.Placement
		err := row.Scan(&p.PlacementID, &p.DeptID, &p.DeptName, &p.DeptCode,
			&p.AcademicYear, &p.StudentsPlaced, &p.TotalStudents, &p.HighestPackage, &p.AveragePackage)
		return p, err
	})
}

func placementValues(p *models.Placement) map[string]interface{} {
	return map[string]interface{}{
		"dept_id":         p.DeptID,
		"academic_year":   p.AcademicYear,
		"students_placed": p.StudentsPlaced,
		"total_students":  p.TotalStudents,
		"highest_package": p.HighestPackage,
		"average_package": p.AveragePackage,
	}
}

// Create inserts a placement record and returns its id.
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("placements").SetMap(placementValues(p)), "placement_id", "placement record")
}

// Update overwrites every editable column of the record.
func (r *PlacementRepository) Update(ctx context.Context, p *models.Placement) error {
	query := r.sb.Update("placements").
		SetMap(placementValues(p)).
		Where(squirrel.Eq{"placement_id": p.PlacementID})
	return r.execAffecting(ctx, query, apperrors.ErrPlacementNotFound, "placement record")
}

// Delete removes the record.
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	query := r.sb.Delete("placements").Where(squirrel.Eq{"placement_id": id})
	return r.execAffecting(ctx, query, apperrors.ErrPlacementNotFound, "placement record")
}
