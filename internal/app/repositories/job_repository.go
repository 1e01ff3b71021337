package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

const (
	dateColumn      = "COALESCE(to_char(%s, 'YYYY-MM-DD'), '')"
	timestampColumn = `to_char(%s AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')`
)

// JobRepository handles job notifications
type JobRepository struct {
	base
}

// ListActive returns active notifications, newest first.
func (r *JobRepository) ListActive(ctx context.Context) ([]models.Job, error) {
	query := r.sb.Select(
		"job_id", "company_name", "position",
		"COALESCE(description, '')", "COALESCE(eligibility, '')",
		"package", "COALESCE(location, '')",
		sqlf(dateColumn, "last_date"), sqlf(timestampColumn, "posted_date"), "is_active",
	).
		From("job_notifications").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("posted_date DESC")

	return queryRows(ctx, r.base, query, "job notifications", func(row pgx.Row) (models.Job, error) {
		var j models.Job
		err := row.Scan(&j.JobID, &j.CompanyName, &j.Position, &j.Description, &j.Eligibility,
			&j.Package, &j.Location, &j.LastDate, &j.PostedDate, &j.IsActive)
		return j, err
	})
}

func jobValues(j *models.Job) map[string]interface{} {
	return map[string]interface{}{
		"company_name": j.CompanyName,
		"position":     j.Position,
		"description":  nullIfEmpty(j.Description),
		"eligibility":  nullIfEmpty(j.Eligibility),
		"package":      j.Package,
		"location":     nullIfEmpty(j.Location),
		"last_date":    nullIfEmpty(j.LastDate),
	}
}

// Create inserts an active notification and returns its id.
func (r *JobRepository) Create(ctx context.Context, j *models.Job) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("job_notifications").SetMap(jobValues(j)), "job_id", "job notification")
}

// Update overwrites the editable columns; posted_date and is_active are left alone.
func (r *JobRepository) Update(ctx context.Context, j *models.Job) error {
	query := r.sb.Update("job_notifications").
		SetMap(jobValues(j)).
		Where(squirrel.Eq{"job_id": j.JobID})
	return r.execAffecting(ctx, query, apperrors.ErrJobNotFound, "job notification")
}

// Delete removes the notification.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	query := r.sb.Delete("job_notifications").Where(squirrel.Eq{"job_id": id})
	return r.execAffecting(ctx, query, apperrors.ErrJobNotFound, "job notification")
}
