package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/dberrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	Accounts     *AccountRepository
	Departments  *DepartmentRepository
	Students     *StudentRepository
	Faculty      *FacultyRepository
	Placements   *PlacementRepository
	Jobs         *JobRepository
	Internships  *InternshipRepository
	Examinations *ExaminationRepository
	Alumni       *AlumniRepository
}

// NewRepositories initializes all repositories
func NewRepositories(q db.Querier) *Repositories {
	base := newBase(q)
	return &Repositories{
		Accounts:     &AccountRepository{base},
		Departments:  &DepartmentRepository{base},
		Students:     &StudentRepository{base},
		Faculty:      &FacultyRepository{base},
		Placements:   &PlacementRepository{base},
		Jobs:         &JobRepository{base},
		Internships:  &InternshipRepository{base},
		Examinations: &ExaminationRepository{base},
		Alumni:       &AlumniRepository{base},
	}
}

type base struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

func newBase(q db.Querier) base {
	return base{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// queryRows builds and runs a select, scanning each row with scan.
func queryRows[T any](ctx context.Context, b base, query squirrel.SelectBuilder, what string, scan func(pgx.Row) (T, error)) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := b.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing query")
		return nil, fmt.Errorf("error querying %s: %w", what, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", what, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}

	return items, nil
}

// insertReturningID runs an INSERT ... RETURNING <idColumn>.
func (b base) insertReturningID(ctx context.Context, query squirrel.InsertBuilder, idColumn, what string) (int64, error) {
	sql, args, err := query.Suffix("RETURNING " + idColumn).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create %s query: %w", what, err)
	}

	var id int64
	if err := b.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, mapWriteError(err, what)
	}
	return id, nil
}

// execAffecting runs an UPDATE or DELETE and returns notFound when no row matched.
func (b base) execAffecting(ctx context.Context, query squirrel.Sqlizer, notFound error, what string) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", what, err)
	}

	tag, err := b.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapWriteError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// mapWriteError turns constraint and input errors into validation errors the caller can show.
func mapWriteError(err error, what string) error {
	switch {
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrDepartmentNotFound
	case dberrors.IsUniqueViolation(err, ""):
		return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "A matching "+what+" already exists").
			WithDetails(map[string]interface{}{"constraint": dberrors.ConstraintName(err)})
	case dberrors.IsBadInput(err):
		return apperrors.NewValidationError("Invalid " + what + " data: " + dberrors.Message(err))
	default:
		logger.Error().Err(err).Str("resource", what).Msg("Error writing row")
		return fmt.Errorf("error writing %s: %w", what, err)
	}
}

// nullIfEmpty maps the empty form value to SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// sqlf formats a column expression template with a column name.
func sqlf(template, column string) string {
	return fmt.Sprintf(template, column)
}
