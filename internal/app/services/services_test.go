package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

func TestFacultyByDepartment(t *testing.T) {
	db := newMemoryDB()
	cse := db.addDepartment("Computer Science", "CSE")
	me := db.addDepartment("Mechanical", "ME")
	db.addFaculty("Dr. Rao", &cse)
	db.addFaculty("Dr. Iyer", &cse)
	db.addFaculty("Prof. Singh", &me)
	db.addFaculty("Visiting Lecturer", nil)

	svc := NewDirectoryService(departmentStore{db}, nil, facultyStore{db}, nil, nil)
	grouped, err := svc.FacultyByDepartment(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Computer Science", "Mechanical", UnassignedDepartment}, grouped.Departments())
	assert.Len(t, grouped["Computer Science"], 2)
	assert.Equal(t, "Prof. Singh", grouped["Mechanical"][0].Name)
	assert.Equal(t, "Visiting Lecturer", grouped[UnassignedDepartment][0].Name)
	assert.Nil(t, grouped[UnassignedDepartment][0].DeptID)
}

func TestFacultyByDepartment_StoreError(t *testing.T) {
	db := newMemoryDB()
	db.failWith = errors.New("connection refused")

	svc := NewDirectoryService(departmentStore{db}, nil, facultyStore{db}, nil, nil)
	_, err := svc.FacultyByDepartment(context.Background())
	assert.ErrorContains(t, err, "connection refused")

	_, err = svc.Departments(context.Background())
	assert.ErrorContains(t, err, "list departments")
}

func TestFindStudent(t *testing.T) {
	students := studentStore{"21CS001": {RollNumber: "21CS001", Name: "Asha"}}
	svc := NewDirectoryService(nil, students, nil, nil, nil)

	student, err := svc.FindStudent(context.Background(), "  21CS001 ")
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)

	_, err = svc.FindStudent(context.Background(), "99XX999")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	msg, ok := apperrors.Message(err)
	assert.True(t, ok)
	assert.Equal(t, "Student not found", msg)

	_, err = svc.FindStudent(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestPlacementService(t *testing.T) {
	db := newMemoryDB()
	cse := db.addDepartment("Computer Science", "CSE")
	db.addPlacement(cse, "2022-23", 50, 60)
	svc := NewPlacementService(placementStore{db})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.PlacementRequest{
		DeptID:         dto.IntOf(cse.DeptID),
		AcademicYear:   " 2023-24 ",
		StudentsPlaced: dto.IntOf(48),
		TotalStudents:  dto.IntOf(60),
		HighestPackage: dto.FloatOf(1200000),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2023-24", list[1].AcademicYear)
	require.NotNil(t, list[1].HighestPackage)
	assert.Equal(t, float64(1200000), *list[1].HighestPackage)
	assert.Nil(t, list[1].AveragePackage, "an empty package is stored as NULL")

	err = svc.Update(ctx, id, dto.PlacementRequest{
		DeptID:         dto.IntOf(cse.DeptID),
		AcademicYear:   "2023-24",
		StudentsPlaced: dto.IntOf(55),
		TotalStudents:  dto.IntOf(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 55, db.placements[id].StudentsPlaced)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 0, dto.PlacementRequest{}), apperrors.ErrResourceNotFound)

	_, err = svc.Create(ctx, dto.PlacementRequest{
		DeptID:         dto.IntOf(999),
		AcademicYear:   "2023-24",
		StudentsPlaced: dto.IntOf(1),
		TotalStudents:  dto.IntOf(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestPlacementService_Validation(t *testing.T) {
	valid := func() dto.PlacementRequest {
		return dto.PlacementRequest{
			DeptID:         dto.IntOf(1),
			AcademicYear:   "2023-24",
			StudentsPlaced: dto.IntOf(10),
			TotalStudents:  dto.IntOf(20),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*dto.PlacementRequest)
		message string
	}{
		{"missing dept", func(r *dto.PlacementRequest) { r.DeptID = dto.NullableInt{} }, "dept_id is required"},
		{"blank year", func(r *dto.PlacementRequest) { r.AcademicYear = "  " }, "academic_year is required"},
		{"missing placed", func(r *dto.PlacementRequest) { r.StudentsPlaced = dto.NullableInt{} }, "students_placed is required"},
		{"missing total", func(r *dto.PlacementRequest) { r.TotalStudents = dto.NullableInt{} }, "total_students is required"},
		{"negative count", func(r *dto.PlacementRequest) { r.TotalStudents = dto.IntOf(-1) }, "Student counts cannot be negative"},
		{"negative package", func(r *dto.PlacementRequest) { r.AveragePackage = dto.FloatOf(-5) }, "Packages cannot be negative"},
	}

	svc := NewPlacementService(placementStore{newMemoryDB()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			msg, _ := apperrors.Message(err)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestJobService(t *testing.T) {
	db := newMemoryDB()
	svc := NewJobService(jobStore{db})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.JobRequest{
		CompanyName: " Infosys ",
		Position:    "Systems Engineer",
		Package:     dto.FloatOf(450000),
		LastDate:    "2024-03-31",
	})
	require.NoError(t, err)
	assert.True(t, db.jobs[id].IsActive)
	assert.Equal(t, "Infosys", db.jobs[id].CompanyName)
	require.NotNil(t, db.jobs[id].Package)
	assert.Equal(t, 450000.0, *db.jobs[id].Package)

	jobs, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	require.NoError(t, svc.Update(ctx, id, dto.JobRequest{CompanyName: "Infosys", Position: "Analyst"}))
	assert.Equal(t, "Analyst", db.jobs[id].Position)
	assert.Nil(t, db.jobs[id].Package)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), apperrors.ErrResourceNotFound)

	for _, req := range []dto.JobRequest{
		{Position: "Analyst"},
		{CompanyName: "TCS"},
		{CompanyName: "TCS", Position: "Analyst", LastDate: "31/03/2024"},
		{CompanyName: "TCS", Position: "Analyst", Package: dto.FloatOf(-1)},
	} {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestExaminationService(t *testing.T) {
	db := newMemoryDB()
	svc := NewExaminationService(examStore{db})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.ExaminationRequest{
		ExamName:  "Mid Semester",
		DeptID:    dto.IntOf(1),
		Year:      dto.IntOf(2),
		ExamDate:  "2024-04-15",
		StartTime: "10:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)
	require.NotNil(t, db.exams[id].Year)
	assert.Equal(t, 2, *db.exams[id].Year)

	require.NoError(t, svc.Update(ctx, id, dto.ExaminationRequest{ExamName: "End Semester", ExamDate: "2024-05-01"}))
	assert.Nil(t, db.exams[id].DeptID)
	assert.ErrorIs(t, svc.Update(ctx, id+100, dto.ExaminationRequest{ExamName: "x", ExamDate: "2024-05-01"}), apperrors.ErrResourceNotFound)

	_, err = svc.Create(ctx, dto.ExaminationRequest{ExamName: "Viva", ExamDate: "2024-05-01", StartTime: "25:00"})
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "start_time must be a time in HH:MM format", msg)

	_, err = svc.Create(ctx, dto.ExaminationRequest{ExamName: "Viva"})
	msg, _ = apperrors.Message(err)
	assert.Equal(t, "exam_date is required", msg)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("teacher123")
	require.NoError(t, err)
	accounts := accountStore{
		"teacher/teacher": {ID: 3, Username: "teacher", PasswordHash: hash, Name: "Dr. Sharma", Role: models.RoleTeacher},
	}
	tokens := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(accounts, tokens, zerolog.Nop())
	ctx := context.Background()

	result, err := svc.Login(ctx, models.RoleTeacher, " teacher ", "teacher123")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sharma", result.Account.Name)
	claims, err := tokens.ValidateToken(result.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, claims.Role)

	_, err = svc.Login(ctx, models.RoleTeacher, "teacher", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.RoleAdmin, "teacher", "teacher123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.RoleTeacher, "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
