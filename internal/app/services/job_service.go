package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// JobService manages job notifications. Listing returns active notifications only.
type JobService interface {
	ListActive(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, req dto.JobRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.JobRequest) error
	Delete(ctx context.Context, id int64) error
}

type jobServiceImpl struct {
	store JobStore
}

// NewJobService creates a new JobService
func NewJobService(store JobStore) JobService {
	return &jobServiceImpl{store: store}
}

func (s *jobServiceImpl) ListActive(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobServiceImpl) Create(ctx context.Context, req dto.JobRequest) (int64, error) {
	job, err := jobFromRequest(req)
	if err != nil {
		return 0, err
	}
	return s.store.Create(ctx, job)
}

func (s *jobServiceImpl) Update(ctx context.Context, id int64, req dto.JobRequest) error {
	if id <= 0 {
		return apperrors.ErrJobNotFound
	}
	job, err := jobFromRequest(req)
	if err != nil {
		return err
	}
	job.JobID = id
	return s.store.Update(ctx, job)
}

func (s *jobServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrJobNotFound
	}
	return s.store.Delete(ctx, id)
}

func jobFromRequest(req dto.JobRequest) (*models.Job, error) {
	req.Trim()

	if req.CompanyName == "" {
		return nil, apperrors.NewRequiredFieldError("company_name")
	}
	if req.Position == "" {
		return nil, apperrors.NewRequiredFieldError("position")
	}
	if req.LastDate != "" {
		if _, err := time.Parse(dateLayout, req.LastDate); err != nil {
			return nil, apperrors.NewValidationError("last_date must be a date in YYYY-MM-DD format")
		}
	}
	if req.Package.Valid && req.Package.Value < 0 {
		return nil, apperrors.NewValidationError("package cannot be negative")
	}

	return &models.Job{
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Description: req.Description,
		Eligibility: req.Eligibility,
		Package:     req.Package.Ptr(),
		Location:    req.Location,
		LastDate:    req.LastDate,
		IsActive:    true,
	}, nil
}
