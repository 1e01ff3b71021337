package services

import (
	"context"
	"sort"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/repositories"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// memoryDB is an in-memory stand-in for the PostgreSQL repositories.
type memoryDB struct {
	nextID      int64
	departments map[int64]models.Department
	faculty     []repositories.FacultyRow
	placements  map[int64]models.Placement
	jobs        map[int64]models.Job
	exams       map[int64]models.Examination
	failWith    error
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		departments: map[int64]models.Department{},
		placements:  map[int64]models.Placement{},
		jobs:        map[int64]models.Job{},
		exams:       map[int64]models.Examination{},
	}
}

func (m *memoryDB) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryDB) addDepartment(name, code string) models.Department {
	d := models.Department{DeptID: m.id(), DeptName: name, DeptCode: code}
	m.departments[d.DeptID] = d
	return d
}

// addFaculty files a faculty member under dept, or under no department when dept is nil.
func (m *memoryDB) addFaculty(name string, dept *models.Department) {
	row := repositories.FacultyRow{Member: models.FacultyMember{FacultyID: m.id(), Name: name}}
	if dept != nil {
		id := dept.DeptID
		row.Member.DeptID = &id
		row.DeptName = dept.DeptName
	}
	m.faculty = append(m.faculty, row)
}

func (m *memoryDB) addPlacement(dept models.Department, year string, placed, total int) {
	p := models.Placement{
		PlacementID: m.id(), DeptID: dept.DeptID, DeptName: dept.DeptName, DeptCode: dept.DeptCode,
		AcademicYear: year, StudentsPlaced: placed, TotalStudents: total,
	}
	m.placements[p.PlacementID] = p
}

type departmentStore struct{ *memoryDB }

func (s departmentStore) List(context.Context) ([]models.Department, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeptName < out[j].DeptName })
	return out, nil
}

type facultyStore struct{ *memoryDB }

func (s facultyStore) List(context.Context) ([]repositories.FacultyRow, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.faculty, nil
}

type placementStore struct{ *memoryDB }

func (s placementStore) List(context.Context) ([]models.Placement, error) {
	out := make([]models.Placement, 0, len(s.placements))
	for _, p := range s.placements {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlacementID < out[j].PlacementID })
	return out, nil
}

func (s placementStore) Create(_ context.Context, p *models.Placement) (int64, error) {
	if _, ok := s.departments[p.DeptID]; !ok {
		return 0, apperrors.ErrDepartmentNotFound
	}
	p.PlacementID = s.id()
	s.placements[p.PlacementID] = *p
	return p.PlacementID, nil
}

func (s placementStore) Update(_ context.Context, p *models.Placement) error {
	if _, ok := s.placements[p.PlacementID]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	s.placements[p.PlacementID] = *p
	return nil
}

func (s placementStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.placements[id]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(s.placements, id)
	return nil
}

type jobStore struct{ *memoryDB }

func (s jobStore) ListActive(context.Context) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range s.jobs {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s jobStore) Create(_ context.Context, j *models.Job) (int64, error) {
	j.JobID = s.id()
	s.jobs[j.JobID] = *j
	return j.JobID, nil
}

func (s jobStore) Update(_ context.Context, j *models.Job) error {
	if _, ok := s.jobs[j.JobID]; !ok {
		return apperrors.ErrJobNotFound
	}
	s.jobs[j.JobID] = *j
	return nil
}

func (s jobStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

type examStore struct{ *memoryDB }

func (s examStore) List(context.Context) ([]models.Examination, error) {
	out := []models.Examination{}
	for _, e := range s.exams {
		out = append(out, e)
	}
	return out, nil
}

func (s examStore) Create(_ context.Context, e *models.Examination) (int64, error) {
	e.ExamID = s.id()
	s.exams[e.ExamID] = *e
	return e.ExamID, nil
}

func (s examStore) Update(_ context.Context, e *models.Examination) error {
	if _, ok := s.exams[e.ExamID]; !ok {
		return apperrors.ErrExaminationNotFound
	}
	s.exams[e.ExamID] = *e
	return nil
}

type studentStore map[string]models.Student

func (s studentStore) GetByRollNumber(_ context.Context, roll string) (*models.Student, error) {
	st, ok := s[roll]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &st, nil
}

type accountStore map[string]models.Account

func (s accountStore) FindByUsername(_ context.Context, role models.Role, username string) (*models.Account, error) {
	a, ok := s[string(role)+"/"+username]
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &a, nil
}
