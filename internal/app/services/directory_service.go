package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// UnassignedDepartment groups faculty without a department.
const UnassignedDepartment = "Unassigned"

// DirectoryService serves the public, read-only listings.
type DirectoryService interface {
	Departments(ctx context.Context) ([]models.Department, error)
	FindStudent(ctx context.Context, rollNumber string) (*models.Student, error)
	FacultyByDepartment(ctx context.Context) (models.FacultyByDepartment, error)
	Internships(ctx context.Context) ([]models.Internship, error)
	Alumni(ctx context.Context) ([]models.Alumnus, error)
}

type directoryServiceImpl struct {
	departments DepartmentStore
	students    StudentStore
	faculty     FacultyStore
	internships InternshipStore
	alumni      AlumniStore
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(departments DepartmentStore, students StudentStore, faculty FacultyStore,
	internships InternshipStore, alumni AlumniStore) DirectoryService {
	return &directoryServiceImpl{
		departments: departments,
		students:    students,
		faculty:     faculty,
		internships: internships,
		alumni:      alumni,
	}
}

func (s *directoryServiceImpl) Departments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s *directoryServiceImpl) FindStudent(ctx context.Context, rollNumber string) (*models.Student, error) {
	rollNumber = strings.TrimSpace(rollNumber)
	if rollNumber == "" {
		return nil, apperrors.NewValidationError("Roll number is required")
	}

	student, err := s.students.GetByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("find student %q: %w", rollNumber, err)
	}
	return student, nil
}

// FacultyByDepartment groups members by department name, keeping the store's order inside each group.
func (s *directoryServiceImpl) FacultyByDepartment(ctx context.Context) (models.FacultyByDepartment, error) {
	rows, err := s.faculty.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}

	grouped := models.FacultyByDepartment{}
	for _, row := range rows {
		name := row.DeptName
		if name == "" {
			name = UnassignedDepartment
		}
		grouped[name] = append(grouped[name], row.Member)
	}
	return grouped, nil
}

func (s *directoryServiceImpl) Internships(ctx context.Context) ([]models.Internship, error) {
	internships, err := s.internships.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return internships, nil
}

func (s *directoryServiceImpl) Alumni(ctx context.Context) ([]models.Alumnus, error) {
	alumni, err := s.alumni.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alumni: %w", err)
	}
	return alumni, nil
}
