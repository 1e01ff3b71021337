package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
)

// InternshipRepository is read-only from the API; rows arrive through the seed or the database.
type InternshipRepository struct {
	base
}

// ListActive returns active internships, newest first.
func (r *InternshipRepository) ListActive(ctx context.Context) ([]models.Internship, error) {
	query := r.sb.Select(
		"internship_id", "company_name", "position",
		"COALESCE(description, '')", "COALESCE(duration, '')",
		"stipend", "COALESCE(location, '')",
		sqlf(dateColumn, "last_date"), sqlf(timestampColumn, "posted_date"), "is_active",
	).
		From("internships").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("posted_date DESC")

	return queryRows(ctx, r.base, query, "internships", func(row pgx.Row) (models.Internship, error) {
		var in models.Internship
		err := row.Scan(&in.InternshipID, &in.CompanyName, &in.Position, &in.Description, &in.Duration,
			&in.Stipend, &in.Location, &in.LastDate, &in.PostedDate, &in.IsActive)
		return in, err
	})
}

// Create inserts an internship, used by the seed.
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) (int64, error) {
	query := r.sb.Insert("internships").SetMap(map[string]interface{}{
		"company_name": in.CompanyName,
		"position":     in.Position,
		"description":  nullIfEmpty(in.Description),
		"duration":     nullIfEmpty(in.Duration),
		"stipend":      in.Stipend,
		"location":     nullIfEmpty(in.Location),
		"last_date":    nullIfEmpty(in.LastDate),
	})
	return r.insertReturningID(ctx, query, "internship_id", "internship")
}
