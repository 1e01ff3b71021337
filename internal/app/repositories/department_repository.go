package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
)

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	base
}

// List returns every department ordered by name.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	query := r.sb.Select("dept_id", "dept_name", "dept_code").
		From("departments").
		OrderBy("dept_name")

	return queryRows(ctx, r.base, query, "departments", func(row pgx.Row) (models.Department, error) {
		var d models.Department
		err := row.Scan(&d.DeptID, &d.DeptName, &d.DeptCode)
		return d, err
	})
}

// EnsureDepartment inserts a department unless one with the same code exists and returns its id.
func (r *DepartmentRepository) EnsureDepartment(ctx context.Context, name, code string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (dept_name, dept_code) VALUES ($1, $2)
		ON CONFLICT (dept_code) DO UPDATE SET dept_name = EXCLUDED.dept_name
		RETURNING dept_id`, name, code).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "department")
	}
	return id, nil
}
