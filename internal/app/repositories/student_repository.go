package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	base
}

// GetByRollNumber looks up one student joined with its department.
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.student_id", "s.roll_number", "s.name", "s.dept_id",
		"COALESCE(d.dept_name, '')", "COALESCE(d.dept_code, '')",
		"s.year", "s.backlogs", "s.fee_paid", "s.fee_pending",
		"COALESCE(s.email, '')", "COALESCE(s.phone, '')",
	).
		From("students s").
		LeftJoin("departments d ON s.dept_id = d.dept_id").
		Where(squirrel.Eq{"s.roll_number": rollNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.StudentID, &s.RollNumber, &s.Name, &s.DeptID,
		&s.DeptName, &s.DeptCode,
		&s.Year, &s.Backlogs, &s.FeePaid, &s.FeePending,
		&s.Email, &s.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("rollNumber", rollNumber).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by roll number: %w", err)
	}

	return s, nil
}

// Create inserts a student, used by the seed.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	query := r.sb.Insert("students").
		Columns("roll_number", "name", "dept_id", "year", "backlogs", "fee_paid", "fee_pending", "email", "phone").
		Values(s.RollNumber, s.Name, s.DeptID, s.Year, s.Backlogs, s.FeePaid, s.FeePending, nullIfEmpty(s.Email), nullIfEmpty(s.Phone))
	return r.insertReturningID(ctx, query, "student_id", "student")
}
