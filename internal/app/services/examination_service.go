package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

const clockLayout = "15:04"

// ExaminationService manages the examination timetable. There is no delete.
type ExaminationService interface {
	List(ctx context.Context) ([]models.Examination, error)
	Create(ctx context.Context, req dto.ExaminationRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.ExaminationRequest) error
}

type examinationServiceImpl struct {
	store ExaminationStore
}

// NewExaminationService creates a new ExaminationService
func NewExaminationService(store ExaminationStore) ExaminationService {
	return &examinationServiceImpl{store: store}
}

func (s *examinationServiceImpl) List(ctx context.Context) ([]models.Examination, error) {
	exams, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list examinations: %w", err)
	}
	return exams, nil
}

func (s *examinationServiceImpl) Create(ctx context.Context, req dto.ExaminationRequest) (int64, error) {
	exam, err := examinationFromRequest(req)
	if err != nil {
		return 0, err
	}
	return s.store.Create(ctx, exam)
}

func (s *examinationServiceImpl) Update(ctx context.Context, id int64, req dto.ExaminationRequest) error {
	if id <= 0 {
		return apperrors.ErrExaminationNotFound
	}
	exam, err := examinationFromRequest(req)
	if err != nil {
		return err
	}
	exam.ExamID = id
	return s.store.Update(ctx, exam)
}

func examinationFromRequest(req dto.ExaminationRequest) (*models.Examination, error) {
	req.Trim()

	if req.ExamName == "" {
		return nil, apperrors.NewRequiredFieldError("exam_name")
	}
	if req.ExamDate == "" {
		return nil, apperrors.NewRequiredFieldError("exam_date")
	}
	if _, err := time.Parse(dateLayout, req.ExamDate); err != nil {
		return nil, apperrors.NewValidationError("exam_date must be a date in YYYY-MM-DD format")
	}
	for _, t := range []struct{ field, value string }{{"start_time", req.StartTime}, {"end_time", req.EndTime}} {
		if t.value == "" {
			continue
		}
		if _, err := time.Parse(clockLayout, t.value); err != nil {
			return nil, apperrors.NewValidationError(t.field + " must be a time in HH:MM format")
		}
	}

	exam := &models.Examination{
		ExamName:   req.ExamName,
		ExamType:   req.ExamType,
		DeptID:     req.DeptID.Ptr(),
		Subject:    req.Subject,
		ExamDate:   req.ExamDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		RoomNumber: req.RoomNumber,
	}
	if req.Year.Valid {
		year := int(req.Year.Value)
		exam.Year = &year
	}
	return exam, nil
}
