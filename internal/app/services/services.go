package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/repositories"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

// Storage contracts the services depend on. The repositories package satisfies them against
// PostgreSQL; tests substitute in-memory fakes.

type DepartmentStore interface {
	List(ctx context.Context) ([]models.Department, error)
}

type StudentStore interface {
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
}

type FacultyStore interface {
	List(ctx context.Context) ([]repositories.FacultyRow, error)
}

type PlacementStore interface {
	List(ctx context.Context) ([]models.Placement, error)
	Create(ctx context.Context, p *models.Placement) (int64, error)
	Update(ctx context.Context, p *models.Placement) error
	Delete(ctx context.Context, id int64) error
}

type JobStore interface {
	ListActive(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, j *models.Job) (int64, error)
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id int64) error
}

type InternshipStore interface {
	ListActive(ctx context.Context) ([]models.Internship, error)
}

type ExaminationStore interface {
	List(ctx context.Context) ([]models.Examination, error)
	Create(ctx context.Context, e *models.Examination) (int64, error)
	Update(ctx context.Context, e *models.Examination) error
}

type AlumniStore interface {
	List(ctx context.Context) ([]models.Alumnus, error)
}

type AccountStore interface {
	FindByUsername(ctx context.Context, role models.Role, username string) (*models.Account, error)
}

// TokenIssuer is the part of auth.JWTService the login flow needs.
type TokenIssuer interface {
	IssueToken(account *models.Account) (*auth.IssuedToken, error)
}

// Services groups every service the controllers use.
type Services struct {
	Auth         AuthService
	Directory    DirectoryService
	Placements   PlacementService
	Jobs         JobService
	Examinations ExaminationService
}

// NewServices wires the services to the repositories.
func NewServices(repos *repositories.Repositories, tokens TokenIssuer, logger zerolog.Logger) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Accounts, tokens, logger),
		Directory:    NewDirectoryService(repos.Departments, repos.Students, repos.Faculty, repos.Internships, repos.Alumni),
		Placements:   NewPlacementService(repos.Placements),
		Jobs:         NewJobService(repos.Jobs),
		Examinations: NewExaminationService(repos.Examinations),
	}
}
