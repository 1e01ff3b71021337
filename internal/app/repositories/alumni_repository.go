package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
)

type AlumniRepository struct {
	base
}

// List returns alumni, most recent graduates first.
func (r *AlumniRepository) List(ctx context.Context) ([]models.Alumnus, error) {
	query := r.sb.Select(
		"a.alumni_id", "a.name", "COALESCE(a.roll_number, '')", "COALESCE(d.dept_name, '')",
		"a.graduation_year", "COALESCE(a.current_company, '')", "COALESCE(a.current_position, '')",
		"COALESCE(a.email, '')",
	).
		From("alumni a").
		LeftJoin("departments d ON a.dept_id = d.dept_id").
		OrderBy("a.graduation_year DESC", "a.name")

	return queryRows(ctx, r.base, query, "alumni", func(row pgx.Row) (models.Alumnus, error) {
		var a models.Alumnus
		err := row.Scan(&a.AlumniID, &a.Name, &a.RollNumber, &a.DeptName,
			&a.GraduationYear, &a.CurrentCompany, &a.CurrentPosition, &a.Email)
		return a, err
	})
}

// Create inserts an alumnus, used by the seed.
func (r *AlumniRepository) Create(ctx context.Context, a *models.Alumnus, deptID *int64) (int64, error) {
	query := r.sb.Insert("alumni").SetMap(map[string]interface{}{
		"name":             a.Name,
		"roll_number":      nullIfEmpty(a.RollNumber),
		"dept_id":          deptID,
		"graduation_year":  a.GraduationYear,
		"current_company":  nullIfEmpty(a.CurrentCompany),
		"current_position": nullIfEmpty(a.CurrentPosition),
		"email":            nullIfEmpty(a.Email),
	})
	return r.insertReturningID(ctx, query, "alumni_id", "alumnus")
}
