package services

import (
	"context"
	"fmt"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// PlacementService manages placement statistics. Writes are teacher-only; the routes enforce that.
type PlacementService interface {
	List(ctx context.Context) ([]models.Placement, error)
	Create(ctx context.Context, req dto.PlacementRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.PlacementRequest) error
	Delete(ctx context.Context, id int64) error
}

type placementServiceImpl struct {
	store PlacementStore
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(store PlacementStore) PlacementService {
	return &placementServiceImpl{store: store}
}

func (s *placementServiceImpl) List(ctx context.Context) ([]models.Placement, error) {
	placements, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	return placements, nil
}

func (s *placementServiceImpl) Create(ctx context.Context, req dto.PlacementRequest) (int64, error) {
	placement, err := placementFromRequest(req)
	if err != nil {
		return 0, err
	}
	return s.store.Create(ctx, placement)
}

func (s *placementServiceImpl) Update(ctx context.Context, id int64, req dto.PlacementRequest) error {
	if id <= 0 {
		return apperrors.ErrPlacementNotFound
	}
	placement, err := placementFromRequest(req)
	if err != nil {
		return err
	}
	placement.PlacementID = id
	return s.store.Update(ctx, placement)
}

func (s *placementServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrPlacementNotFound
	}
	return s.store.Delete(ctx, id)
}

func placementFromRequest(req dto.PlacementRequest) (*models.Placement, error) {
	req.Trim()

	switch {
	case !req.DeptID.Valid:
		return nil, apperrors.NewRequiredFieldError("dept_id")
	case req.AcademicYear == "":
		return nil, apperrors.NewRequiredFieldError("academic_year")
	case !req.StudentsPlaced.Valid:
		return nil, apperrors.NewRequiredFieldError("students_placed")
	case !req.TotalStudents.Valid:
		return nil, apperrors.NewRequiredFieldError("total_students")
	case req.StudentsPlaced.Value < 0 || req.TotalStudents.Value < 0:
		return nil, apperrors.NewValidationError("Student counts cannot be negative")
	case (req.HighestPackage.Valid && req.HighestPackage.Value < 0) || (req.AveragePackage.Valid && req.AveragePackage.Value < 0):
		return nil, apperrors.NewValidationError("Packages cannot be negative")
	}

	return &models.Placement{
		DeptID:         req.DeptID.Value,
		AcademicYear:   req.AcademicYear,
		StudentsPlaced: int(req.StudentsPlaced.Value),
		TotalStudents:  int(req.TotalStudents.Value),
		HighestPackage: req.HighestPackage.Ptr(),
		AveragePackage: req.AveragePackage.Ptr(),
	}, nil
}
