package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/repositories"
	"github.com/yigit/collegeportal/internal/config"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

// DefaultDepartments are created on every start; existing rows keep their ids.
var DefaultDepartments = []models.Department{
	{DeptName: "Computer Science", DeptCode: "CSE"},
	{DeptName: "Electronics and Communication", DeptCode: "ECE"},
	{DeptName: "Mechanical Engineering", DeptCode: "ME"},
	{DeptName: "Civil Engineering", DeptCode: "CE"},
	{DeptName: "Electrical Engineering", DeptCode: "EEE"},
}

// CreateDefaultData creates the default departments and login accounts, and the demo rows when enabled.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Departments/Accounts)...")

	return db.WithTransaction(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		repos := repositories.NewRepositories(tx)

		deptIDs, err := ensureDepartments(ctx, repos.Departments)
		if err != nil {
			return err
		}

		var finalErr error
		if err := ensureAccounts(ctx, repos.Accounts, cfg, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		if cfg.Seed.DemoData {
			if err := createDemoData(ctx, tx, repos, deptIDs, lgr); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		}
		return finalErr
	})
}

func ensureDepartments(ctx context.Context, departments *repositories.DepartmentRepository) (map[string]int64, error) {
	ids := make(map[string]int64, len(DefaultDepartments))
	for _, d := range DefaultDepartments {
		id, err := departments.EnsureDepartment(ctx, d.DeptName, d.DeptCode)
		if err != nil {
			return nil, fmt.Errorf("seed department %s: %w", d.DeptCode, err)
		}
		ids[d.DeptCode] = id
	}
	return ids, nil
}

func ensureAccounts(ctx context.Context, accounts *repositories.AccountRepository, cfg *config.Config, lgr zerolog.Logger) error {
	defaults := []struct {
		account  models.Account
		password string
	}{
		{models.Account{Username: cfg.Seed.AdminUsername, Role: models.RoleAdmin}, cfg.Seed.AdminPassword},
		{models.Account{Username: cfg.Seed.TeacherUsername, Name: cfg.Seed.TeacherName, Role: models.RoleTeacher}, cfg.Seed.TeacherPassword},
	}

	var finalErr error
	for _, d := range defaults {
		if d.account.Username == "" || d.password == "" {
			lgr.Warn().Str("role", string(d.account.Role)).Msg("No default credentials configured, skipping account")
			continue
		}

		hash, err := auth.HashPassword(d.password)
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("hash %s password: %w", d.account.Role, err))
			continue
		}
		account := d.account
		account.PasswordHash = hash

		id, err := accounts.Upsert(ctx, &account)
		if err != nil {
			lgr.Error().Err(err).Str("role", string(account.Role)).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("role", string(account.Role)).Str("username", account.Username).Int64("id", id).Msg("Default account ready")
	}
	return finalErr
}
