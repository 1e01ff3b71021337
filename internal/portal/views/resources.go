package views

import (
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/session"
)

func teacherOnly(st *session.State) bool { return st.IsTeacher() }

func staff(st *session.State) bool { return st.IsStaff() }

// Placements may only be changed by a logged-in teacher.
var Placements = Resource[models.Placement]{
	Page:     session.PagePlacements,
	Endpoint: "/placements",
	Fields:   []string{"dept_id", "academic_year", "students_placed", "total_students", "highest_package", "average_package"},

	FetchFailed:   "Failed to fetch placements data",
	SubmitFailed:  "Failed to submit placement record",
	DeleteFailed:  "Failed to delete placement record",
	ConfirmDelete: "Are you sure you want to delete this placement record?",
	Deletable:     true,

	ID: func(p models.Placement) int64 { return p.PlacementID },
	ToForm: func(p models.Placement) map[string]string {
		return map[string]string{
			"dept_id":         formInt(p.DeptID),
			"academic_year":   p.AcademicYear,
			"students_placed": formInt(int64(p.StudentsPlaced)),
			"total_students":  formInt(int64(p.TotalStudents)),
			"highest_package": formFloatPtr(p.HighestPackage),
			"average_package": formFloatPtr(p.AveragePackage),
		}
	},

	CanMutate:        teacherOnly,
	Token:            (*session.State).TeacherToken,
	NeedsDepartments: teacherOnly,
}

// Jobs may be changed by an admin or a teacher.
var Jobs = Resource[models.Job]{
	Page:     session.PageJobs,
	Endpoint: "/jobs",
	Fields:   []string{"company_name", "position", "description", "eligibility", "package", "location", "last_date"},

	FetchFailed:   "Failed to fetch jobs data",
	SubmitFailed:  "Failed to submit job notification",
	DeleteFailed:  "Failed to delete job notification",
	ConfirmDelete: "Are you sure you want to delete this job notification?",
	Deletable:     true,

	ID: func(j models.Job) int64 { return j.JobID },
	ToForm: func(j models.Job) map[string]string {
		return map[string]string{
			"company_name": j.CompanyName,
			"position":     j.Position,
			"description":  j.Description,
			"eligibility":  j.Eligibility,
			"package":      formFloatPtr(j.Package),
			"location":     j.Location,
			"last_date":    j.LastDate,
		}
	},

	CanMutate: staff,
	Token:     (*session.State).StaffToken,
}

// Examinations may be created and edited by an admin or a teacher. There is no delete.
var Examinations = Resource[models.Examination]{
	Page:     session.PageExaminations,
	Endpoint: "/examinations",
	Fields:   []string{"exam_name", "exam_type", "dept_id", "year", "subject", "exam_date", "start_time", "end_time", "room_number"},

	FetchFailed:  "Failed to fetch examinations data",
	SubmitFailed: "Failed to submit examination",

	ID: func(e models.Examination) int64 { return e.ExamID },
	ToForm: func(e models.Examination) map[string]string {
		return map[string]string{
			"exam_name":   e.ExamName,
			"exam_type":   e.ExamType,
			"dept_id":     formIntPtr(e.DeptID),
			"year":        formSmallIntPtr(e.Year),
			"subject":     e.Subject,
			"exam_date":   e.ExamDate,
			"start_time":  e.StartTime,
			"end_time":    e.EndTime,
			"room_number": e.RoomNumber,
		}
	},

	CanMutate:        staff,
	Token:            (*session.State).StaffToken,
	NeedsDepartments: staff,
}

var Internships = Resource[models.Internship]{
	Page:        session.PageInternships,
	Endpoint:    "/internships",
	FetchFailed: "Failed to fetch internships data",
	ID:          func(i models.Internship) int64 { return i.InternshipID },
}

var Alumni = Resource[models.Alumnus]{
	Page:        session.PageAlumni,
	Endpoint:    "/alumni",
	FetchFailed: "Failed to fetch alumni data",
	ID:          func(a models.Alumnus) int64 { return a.AlumniID },
}
