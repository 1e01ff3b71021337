package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
)

// FacultyRow is a faculty member with the name of its department, or "" when unassigned.
type FacultyRow struct {
	DeptName string
	Member   models.FacultyMember
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	base
}

// List returns faculty ordered by department name then member name.
func (r *FacultyRepository) List(ctx context.Context) ([]FacultyRow, error) {
	query := r.sb.Select(
		"COALESCE(d.dept_name, '')",
		"f.faculty_id", "f.name", "f.dept_id",
		"COALESCE(f.designation, '')", "f.experience",
		"COALESCE(f.qualification, '')", "COALESCE(f.email, '')",
	).
		From("faculty f").
		LeftJoin("departments d ON f.dept_id = d.dept_id").
		OrderBy("d.dept_name", "f.name")

	return queryRows(ctx, r.base, query, "faculty", func(row pgx.Row) (FacultyRow, error) {
		var fr FacultyRow
		m := &fr.Member
		err := row.Scan(&fr.DeptName, &m.FacultyID, &m.Name, &m.DeptID, &m.Designation, &m.Experience, &m.Qualification, &m.Email)
		return fr, err
	})
}

// Create inserts a faculty member, used by the seed.
func (r *FacultyRepository) Create(ctx context.Context, m *models.FacultyMember) (int64, error) {
	query := r.sb.Insert("faculty").
		Columns("name", "dept_id", "designation", "experience", "qualification", "email").
		Values(m.Name, m.DeptID, nullIfEmpty(m.Designation), m.Experience, nullIfEmpty(m.Qualification), nullIfEmpty(m.Email))
	return r.insertReturningID(ctx, query, "faculty_id", "faculty member")
}
