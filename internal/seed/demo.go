package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/repositories"
)

func ptr[T any](v T) *T { return &v }

// createDemoData fills an empty database with a small, browsable data set.
func createDemoData(ctx context.Context, tx pgx.Tx, repos *repositories.Repositories, deptIDs map[string]int64, lgr zerolog.Logger) error {
	var students int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM students").Scan(&students); err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	if students > 0 {
		lgr.Debug().Int("students", students).Msg("Demo data already present")
		return nil
	}

	dept := func(code string) *int64 { return ptr(deptIDs[code]) }

	for _, s := range []models.Student{
		{RollNumber: "CS101", Name: "Ananya Iyer", DeptID: dept("CSE"), Year: 3, FeePaid: 50000, Email: "ananya@college.edu", Phone: "9876500001"},
		{RollNumber: "CS102", Name: "Rahul Verma", DeptID: dept("CSE"), Year: 2, Backlogs: 1, FeePaid: 30000, FeePending: 20000, Email: "rahul@college.edu", Phone: "9876500002"},
		{RollNumber: "EC201", Name: "Meera Nair", DeptID: dept("ECE"), Year: 4, FeePaid: 50000, Email: "meera@college.edu", Phone: "9876500003"},
		{RollNumber: "ME301", Name: "Arjun Singh", DeptID: dept("ME"), Year: 1, FeePaid: 25000, FeePending: 25000, Email: "arjun@college.edu", Phone: "9876500004"},
	} {
		s := s
		if _, err := repos.Students.Create(ctx, &s); err != nil {
			return fmt.Errorf("seed student %s: %w", s.RollNumber, err)
		}
	}

	for _, f := range []models.FacultyMember{
		{Name: "Dr. Kavita Rao", DeptID: dept("CSE"), Designation: "Professor", Experience: 18, Qualification: "Ph.D. Computer Science", Email: "kavita.rao@college.edu"},
		{Name: "Prof. Suresh Menon", DeptID: dept("CSE"), Designation: "Associate Professor", Experience: 11, Qualification: "M.Tech", Email: "suresh.menon@college.edu"},
		{Name: "Dr. Priya Das", DeptID: dept("ECE"), Designation: "Professor", Experience: 15, Qualification: "Ph.D. VLSI", Email: "priya.das@college.edu"},
		{Name: "Mr. Vikram Joshi", DeptID: dept("ME"), Designation: "Assistant Professor", Experience: 4, Qualification: "M.E. Thermal", Email: "vikram.joshi@college.edu"},
	} {
		f := f
		if _, err := repos.Faculty.Create(ctx, &f); err != nil {
			return fmt.Errorf("seed faculty %s: %w", f.Name, err)
		}
	}

	for _, p := range []models.Placement{
		{DeptID: deptIDs["CSE"], AcademicYear: "2023-24", StudentsPlaced: 112, TotalStudents: 120, HighestPackage: ptr(2400000.0), AveragePackage: ptr(850000.0)},
		{DeptID: deptIDs["CSE"], AcademicYear: "2022-23", StudentsPlaced: 101, TotalStudents: 118, HighestPackage: ptr(1800000.0), AveragePackage: ptr(720000.0)},
		{DeptID: deptIDs["ECE"], AcademicYear: "2023-24", StudentsPlaced: 74, TotalStudents: 90, HighestPackage: ptr(1500000.0), AveragePackage: ptr(610000.0)},
		{DeptID: deptIDs["ME"], AcademicYear: "2023-24", StudentsPlaced: 48, TotalStudents: 75, HighestPackage: ptr(900000.0), AveragePackage: ptr(420000.0)},
	} {
		p := p
		if _, err := repos.Placements.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed placement: %w", err)
		}
	}

	for _, j := range []models.Job{
		{CompanyName: "Infosys", Position: "Systems Engineer", Description: "Campus hiring for the 2024 batch.", Eligibility: "B.Tech, 60% aggregate, no active backlogs", Package: ptr(450000.0), Location: "Pune", LastDate: "2024-03-31"},
		{CompanyName: "Bosch", Position: "Graduate Engineer Trainee", Eligibility: "B.Tech ME/EEE", Package: ptr(600000.0), Location: "Bengaluru", LastDate: "2024-04-15"},
	} {
		j := j
		if _, err := repos.Jobs.Create(ctx, &j); err != nil {
			return fmt.Errorf("seed job %s: %w", j.CompanyName, err)
		}
	}

	for _, in := range []models.Internship{
		{CompanyName: "Zoho", Position: "Software Intern", Description: "Summer internship on the CRM team.", Duration: "2 months", Stipend: ptr(20000.0), Location: "Chennai", LastDate: "2024-04-01"},
		{CompanyName: "L&T", Position: "Site Engineering Intern", Duration: "6 weeks", Location: "Mumbai", LastDate: "2024-04-20"},
	} {
		in := in
		if _, err := repos.Internships.Create(ctx, &in); err != nil {
			return fmt.Errorf("seed internship %s: %w", in.CompanyName, err)
		}
	}

	for _, e := range []models.Examination{
		{ExamName: "Mid Semester", ExamType: "Theory", DeptID: dept("CSE"), Year: ptr(3), Subject: "Operating Systems", ExamDate: "2024-04-15", StartTime: "10:00", EndTime: "13:00", RoomNumber: "B-204"},
		{ExamName: "Lab Assessment", ExamType: "Practical", DeptID: dept("ECE"), Year: ptr(2), Subject: "Digital Electronics", ExamDate: "2024-04-17", StartTime: "14:00", EndTime: "17:00", RoomNumber: "Lab-3"},
	} {
		e := e
		if _, err := repos.Examinations.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed examination %s: %w", e.ExamName, err)
		}
	}

	for _, a := range []struct {
		alumnus models.Alumnus
		dept    string
	}{
		{models.Alumnus{Name: "Neha Kulkarni", RollNumber: "CS0901", GraduationYear: 2013, CurrentCompany: "Google", CurrentPosition: "Staff Engineer", Email: "neha.k@example.com"}, "CSE"},
		{models.Alumnus{Name: "Rohan Gupta", RollNumber: "ME1105", GraduationYear: 2015, CurrentCompany: "Tata Motors", CurrentPosition: "Design Lead", Email: "rohan.g@example.com"}, "ME"},
	} {
		a := a
		if _, err := repos.Alumni.Create(ctx, &a.alumnus, dept(a.dept)); err != nil {
			return fmt.Errorf("seed alumnus %s: %w", a.alumnus.Name, err)
		}
	}

	lgr.Info().Msg("Demo data created")
	return nil
}
