package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// AccountRepository reads the admin and teachers tables.
type AccountRepository struct {
	base
}

// FindByUsername returns the account of the given role. Unknown usernames map to ErrInvalidCredentials
// so callers cannot tell a missing user from a wrong password.
func (r *AccountRepository) FindByUsername(ctx context.Context, role models.Role, username string) (*models.Account, error) {
	var query squirrel.SelectBuilder
	switch role {
	case models.RoleAdmin:
		query = r.sb.Select("admin_id", "username", "password", "''").From("admin")
	case models.RoleTeacher:
		query = r.sb.Select("teacher_id", "username", "password", "name").From("teachers")
	default:
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrBadRequest)
	}

	sql, args, err := query.Where(squirrel.Eq{"username": username}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account query: %w", err)
	}

	account := &models.Account{Role: role}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting %s account: %w", role, err)
	}

	return account, nil
}

// Upsert creates the account or replaces its password hash (and teacher name).
func (r *AccountRepository) Upsert(ctx context.Context, account *models.Account) (int64, error) {
	var sql string
	var args []interface{}
	switch account.Role {
	case models.RoleAdmin:
		sql = `INSERT INTO admin (username, password) VALUES ($1, $2)
			ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password
			RETURNING admin_id`
		args = []interface{}{account.Username, account.PasswordHash}
	case models.RoleTeacher:
		sql = `INSERT INTO teachers (username, password, name) VALUES ($1, $2, $3)
			ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, name = EXCLUDED.name
			RETURNING teacher_id`
		args = []interface{}{account.Username, account.PasswordHash, account.Name}
	default:
		return 0, fmt.Errorf("unknown role %q: %w", account.Role, apperrors.ErrBadRequest)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, mapWriteError(err, "account")
	}
	return id, nil
}
