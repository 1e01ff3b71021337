package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

const timeColumn = "COALESCE(to_char(%s, 'HH24:MI'), '')"

// ExaminationRepository handles the examination timetable. There is no delete.
type ExaminationRepository struct {
	base
}

// List returns the timetable in date and start time order.
func (r *ExaminationRepository) List(ctx context.Context) ([]models.Examination, error) {
	query := r.sb.Select(
		"e.exam_id", "e.exam_name", "COALESCE(e.exam_type, '')",
		"e.dept_id", "COALESCE(d.dept_name, '')", "e.year",
		"COALESCE(e.subject, '')", sqlf(dateColumn, "e.exam_date"),
		sqlf(timeColumn, "e.start_time"), sqlf(timeColumn, "e.end_time"),
		"COALESCE(e.room_number, '')",
	).
		From("examinations e").
		LeftJoin("departments d ON e.dept_id = d.dept_id").
		OrderBy("e.exam_date", "e.start_time")

	return queryRows(ctx, r.base, query, "examinations", func(row pgx.Row) (models.Examination, error) {
		var e models.Examination
		err := row.Scan(&e.ExamID, &e.ExamName, &e.ExamType, &e.DeptID, &e.DeptName, &e.Year,
			&e.Subject, &e.ExamDate, &e.StartTime, &e.EndTime, &e.RoomNumber)
		return e, err
	})
}

func examinationValues(e *models.Examination) map[string]interface{} {
	return map[string]interface{}{
		"exam_name":   e.ExamName,
		"exam_type":   nullIfEmpty(e.ExamType),
		"dept_id":     e.DeptID,
		"year":        e.Year,
		"subject":     nullIfEmpty(e.Subject),
		"exam_date":   e.ExamDate,
		"start_time":  nullIfEmpty(e.StartTime),
		"end_time":    nullIfEmpty(e.EndTime),
		"room_number": nullIfEmpty(e.RoomNumber),
	}
}

// Create inserts an examination and returns its id.
func (r *ExaminationRepository) Create(ctx context.Context, e *models.Examination) (int64, error) {
	return r.insertReturningID(ctx, r.sb.Insert("examinations").SetMap(examinationValues(e)), "exam_id", "examination")
}

// Update overwrites every editable column.
func (r *ExaminationRepository) Update(ctx context.Context, e *models.Examination) error {
	query := r.sb.Update("examinations").
		SetMap(examinationValues(e)).
		Where(squirrel.Eq{"exam_id": e.ExamID})
	return r.execAffecting(ctx, query, apperrors.ErrExaminationNotFound, "examination")
}
