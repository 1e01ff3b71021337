package views

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/auth"
	"github.com/yigit/collegeportal/internal/portal/session"
)

var ctx = context.Background()

func adminSession() *session.State {
	return &session.State{Admin: &session.Capability{Role: models.RoleAdmin, Token: "admin-tok"}}
}

func teacherSession() *session.State {
	return &session.State{Teacher: &session.Capability{Role: models.RoleTeacher, Token: "teacher-tok", Name: "Dr. Rao"}}
}

const placementsBody = `{"success":true,"data":[
	{"placement_id":1,"dept_id":1,"dept_name":"Computer Science","dept_code":"CSE","academic_year":"2023-24","students_placed":48,"total_students":60,"highest_package":1200000,"average_package":650000},
	{"placement_id":2,"dept_id":2,"dept_name":"Mechanical","dept_code":"ME","academic_year":"2023-24","students_placed":0,"total_students":0,"highest_package":0,"average_package":0}
]}`

func TestListView_MountOutcomes(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/placements", http.StatusOK, placementsBody)

	v := NewListView(Placements, b.client(), &session.State{}, Deps{})
	v.Mount(ctx)

	assert.False(t, v.State.Loading)
	assert.Empty(t, v.State.Error)
	require.Len(t, v.State.Items, 2)
	assert.Equal(t, models.Placement{
		PlacementID: 1, DeptID: 1, DeptName: "Computer Science", DeptCode: "CSE", AcademicYear: "2023-24",
		StudentsPlaced: 48, TotalStudents: 60, HighestPackage: amount(1200000), AveragePackage: amount(650000),
	}, v.State.Items[0])
	assert.Equal(t, "80.00", Percentage(v.State.Items[0]))
	assert.Equal(t, "NaN", Percentage(v.State.Items[1]))
	assert.Equal(t, 0, b.count(http.MethodGet, "/departments"), "departments are only loaded for a teacher")

	b.on(http.MethodGet, "/placements", http.StatusInternalServerError, `{"success":false,"message":"Failed to fetch placements"}`)
	v.Mount(ctx)
	assert.Equal(t, "Failed to fetch placements", v.State.Error)
	assert.Empty(t, v.State.Items)

	b.on(http.MethodGet, "/placements", http.StatusOK, `not json`)
	v.Mount(ctx)
	assert.Equal(t, "Failed to fetch placements data", v.State.Error)
	assert.Empty(t, v.State.Items)
}

func TestListView_DepartmentsFailureIsSilent(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/examinations", http.StatusOK, `{"success":true,"data":[]}`)
	b.on(http.MethodGet, "/departments", http.StatusOK, `<html>`)

	v := NewListView(Examinations, b.client(), teacherSession(), Deps{Logger: zerolog.Nop()})
	v.Mount(ctx)

	assert.Empty(t, v.State.Error)
	assert.Nil(t, v.State.Departments)
	assert.Equal(t, 1, b.count(http.MethodGet, "/departments"))
}

func TestListView_SubmitCreatesAndRefetches(t *testing.T) {
	b := newFakeBackend(t)
	jobs := `{"success":true,"data":[]}`
	b.onFunc(http.MethodGet, "/jobs", func() (int, string) { return http.StatusOK, jobs })
	b.onFunc(http.MethodPost, "/jobs", func() (int, string) {
		jobs = `{"success":true,"data":[{"job_id":1,"company_name":"Acme","position":"SDE","posted_date":"2024-01-15T10:00:00Z"}]}`
		return http.StatusCreated, `{"success":true,"message":"Job added"}`
	})

	alerts := &Alerts{}
	v := NewListView(Jobs, b.client(), adminSession(), Deps{Notifier: alerts})
	v.Mount(ctx)
	v.ToggleForm()
	v.Change("company_name", "Acme")
	v.Change("position", "SDE")
	v.Change("not_a_field", "x")
	v.Submit(ctx)

	assert.Equal(t, Alerts{"Job added"}, *alerts)
	assert.False(t, v.State.ShowForm)
	assert.Nil(t, v.State.EditingID)
	assert.Equal(t, Jobs.BlankForm(), v.State.FormData)
	assert.Equal(t, 2, b.count(http.MethodGet, "/jobs"))
	require.Len(t, v.State.Items, 1)
	assert.Equal(t, "Acme", v.State.Items[0].CompanyName)

	post := b.callsTo(http.MethodPost, "/jobs")
	require.Len(t, post, 1)
	assert.Equal(t, "Bearer admin-tok", post[0].Auth)
	assert.Equal(t, map[string]string{
		"company_name": "Acme", "position": "SDE", "description": "", "eligibility": "",
		"package": "", "location": "", "last_date": "",
	}, post[0].Body)
}

func TestListView_SubmitFailuresKeepForm(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/placements", http.StatusOK, `{"success":true,"data":[]}`)
	b.on(http.MethodGet, "/departments", http.StatusOK, `{"success":true,"data":[{"dept_id":1,"dept_name":"Computer Science","dept_code":"CSE"}]}`)
	b.on(http.MethodPost, "/placements", http.StatusBadRequest, `{"success":false,"message":"dept_id is required"}`)

	alerts := &Alerts{}
	v := NewListView(Placements, b.client(), teacherSession(), Deps{Notifier: alerts})
	v.Mount(ctx)
	require.Len(t, v.State.Departments, 1)

	v.ToggleForm()
	v.Change("academic_year", "2023-24")
	v.Submit(ctx)

	assert.Equal(t, Alerts{"Error: dept_id is required"}, *alerts)
	assert.True(t, v.State.ShowForm)
	assert.Equal(t, "2023-24", v.Field("academic_year"))
	assert.Equal(t, 1, b.count(http.MethodGet, "/placements"))
	assert.Equal(t, "Bearer teacher-tok", b.last().Auth)

	b.on(http.MethodPost, "/placements", http.StatusOK, `oops`)
	v.Submit(ctx)
	assert.Equal(t, "Failed to submit placement record", (*alerts)[1])
	assert.Equal(t, "2023-24", v.Field("academic_year"))
}

func TestListView_EditAndUpdate(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/placements", http.StatusOK, placementsBody)
	b.on(http.MethodGet, "/departments", http.StatusOK, `{"success":true,"data":[]}`)
	b.on(http.MethodPut, "/placements/2", http.StatusOK, `{"success":true,"message":"Placement record updated successfully"}`)

	alerts := &Alerts{}
	v := NewListView(Placements, b.client(), teacherSession(), Deps{Notifier: alerts})
	v.Mount(ctx)

	v.Edit(2)
	require.NotNil(t, v.State.EditingID)
	assert.True(t, v.Editing())
	assert.Equal(t, int64(2), *v.State.EditingID)
	assert.True(t, v.State.ShowForm)
	assert.Equal(t, map[string]string{
		"dept_id": "2", "academic_year": "2023-24", "students_placed": "", "total_students": "",
		"highest_package": "", "average_package": "",
	}, v.State.FormData)

	v.ToggleForm()
	assert.False(t, v.State.ShowForm)
	assert.NotNil(t, v.State.EditingID, "toggling keeps the edit target")
	v.ToggleForm()

	v.Change("total_students", "55")
	v.Submit(ctx)

	assert.Equal(t, Alerts{"Placement record updated successfully"}, *alerts)
	assert.Equal(t, "55", b.callsTo(http.MethodPut, "/placements/2")[0].Body["total_students"])
	assert.Equal(t, 0, b.count(http.MethodPost, "/placements"))
	assert.Nil(t, v.State.EditingID)

	v.Edit(99)
	assert.Nil(t, v.State.EditingID)
}

func TestListView_Delete(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/jobs", http.StatusOK, `{"success":true,"data":[{"job_id":4,"company_name":"Acme","position":"SDE"}]}`)
	b.on(http.MethodDelete, "/jobs/4", http.StatusOK, `{"success":true,"message":"Job notification deleted successfully"}`)

	var asked []string
	answer := false
	alerts := &Alerts{}
	confirm := ConfirmFunc(func(prompt string) bool {
		asked = append(asked, prompt)
		return answer
	})
	v := NewListView(Jobs, b.client(), teacherSession(), Deps{Notifier: alerts, Confirmer: confirm})
	v.Mount(ctx)
	before := v.State
	calls := b.total()

	v.Delete(ctx, 4)
	assert.Equal(t, []string{"Are you sure you want to delete this job notification?"}, asked)
	assert.Equal(t, calls, b.total())
	assert.Equal(t, before, v.State)
	assert.Empty(t, *alerts)

	answer = true
	v.Delete(ctx, 4)
	assert.Equal(t, 1, b.count(http.MethodDelete, "/jobs/4"))
	assert.Equal(t, 2, b.count(http.MethodGet, "/jobs"))
	assert.Equal(t, calls+2, b.total())
	assert.Equal(t, Alerts{"Job notification deleted successfully"}, *alerts)

	b.on(http.MethodDelete, "/jobs/4", http.StatusNotFound, `{"success":false,"message":"Job not found"}`)
	v.Delete(ctx, 4)
	assert.Equal(t, "Error: Job not found", (*alerts)[1])
	assert.Equal(t, 2, b.count(http.MethodGet, "/jobs"))
}

func TestListView_ExaminationsCannotDelete(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/examinations", http.StatusOK, `{"success":true,"data":[{"exam_id":1,"exam_name":"Mid Sem"}]}`)
	b.on(http.MethodGet, "/departments", http.StatusOK, `{"success":true,"data":[]}`)

	v := NewListView(Examinations, b.client(), adminSession(), Deps{Confirmer: ConfirmFunc(func(string) bool { return true })})
	v.Mount(ctx)
	calls := b.total()

	v.Delete(ctx, 1)
	assert.Equal(t, calls, b.total())
}

func TestListView_RoleGatesAreIndependent(t *testing.T) {
	tests := []struct {
		name      string
		state     *session.State
		placement bool
		staff     bool
	}{
		{"anonymous", &session.State{}, false, false},
		{"admin only", adminSession(), false, true},
		{"teacher only", teacherSession(), true, true},
	}
	b := newFakeBackend(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.placement, NewListView(Placements, b.client(), tt.state, Deps{}).CanMutate())
			assert.Equal(t, tt.staff, NewListView(Jobs, b.client(), tt.state, Deps{}).CanMutate())
			assert.Equal(t, tt.staff, NewListView(Examinations, b.client(), tt.state, Deps{}).CanMutate())
			assert.False(t, NewListView(Internships, b.client(), tt.state, Deps{}).CanMutate())
			assert.False(t, NewListView(Alumni, b.client(), tt.state, Deps{}).CanMutate())
		})
	}

	v := NewListView(Placements, b.client(), adminSession(), Deps{})
	v.ToggleForm()
	v.Submit(ctx)
	assert.False(t, v.State.ShowForm)
	assert.Equal(t, 0, b.total())
}

func TestFacultyView(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/faculty", http.StatusOK, `{"success":true,"data":{
		"Mechanical":[{"faculty_id":2,"name":"Dr. Iyer","experience":12}],
		"Computer Science":[{"faculty_id":1,"name":"Dr. Rao","experience":8}]
	}}`)
	b.on(http.MethodGet, "/departments", http.StatusInternalServerError, `{"success":false,"message":"boom"}`)

	v := NewFacultyView(b.client(), Deps{})
	v.Mount(ctx)

	assert.Empty(t, v.State.Error)
	assert.Nil(t, v.State.Departments)
	groups := v.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Computer Science", groups[0].Department)
	assert.Equal(t, "Dr. Rao", groups[0].Members[0].Name)

	v.Filter("Mechanical")
	groups = v.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Mechanical", groups[0].Department)

	v.Filter("")
	assert.Len(t, v.Groups(), 2)

	b.on(http.MethodGet, "/faculty", http.StatusOK, `{}`)
	v.Mount(ctx)
	assert.Equal(t, "Failed to fetch faculty data", v.State.Error)
	assert.Empty(t, v.Groups())
}

func TestStudentLookup(t *testing.T) {
	b := newFakeBackend(t)
	b.on(http.MethodGet, "/students/search/CS101", http.StatusOK, `{"success":true,"data":{"roll_number":"CS101","name":"A","dept_name":"CS","dept_code":"CSE","year":3,"backlogs":0,"fee_paid":50000,"fee_pending":0,"email":"a@x.com","phone":"999"}}`)
	b.on(http.MethodGet, "/students/search/ZZ1", http.StatusNotFound, `{"success":false,"message":"Student not found"}`)

	v := NewStudentLookup(b.client(), Deps{})

	for _, blank := range []string{"", "   "} {
		v.Search(ctx, blank)
		assert.Equal(t, "Please enter a roll number", v.State.Error)
	}
	assert.Equal(t, 0, b.total())

	v.Search(ctx, "CS101")
	require.NotNil(t, v.State.Student)
	assert.Empty(t, v.State.Error)
	assert.Equal(t, "A", v.State.Student.Name)
	assert.Equal(t, "₹50000", Rupees(v.State.Student.FeePaid))
	assert.Equal(t, "₹0", Rupees(v.State.Student.FeePending))

	v.Search(ctx, "ZZ1")
	assert.Nil(t, v.State.Student)
	assert.Equal(t, "Student not found", v.State.Error)

	b.srv.Close()
	v.Search(ctx, "CS101")
	assert.Equal(t, "Failed to fetch student data", v.State.Error)
}

func TestLoginView(t *testing.T) {
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	issued, err := jwt.IssueToken(&models.Account{ID: 3, Username: "teacher", Name: "Dr. Sharma", Role: models.RoleTeacher})
	require.NoError(t, err)

	b := newFakeBackend(t)
	b.on(http.MethodPost, "/teacher/login", http.StatusOK, `{"success":true,"message":"Login successful","teacher_id":3,"name":"Dr. Sharma","token":"`+issued.Token+`"}`)
	b.on(http.MethodPost, "/admin/login", http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`)

	st := adminSession()
	teacher := NewLoginView(models.RoleTeacher, b.client(), st, Deps{})
	require.True(t, teacher.Submit(ctx, "teacher", "teacher123"))
	assert.True(t, st.IsTeacher())
	assert.True(t, st.IsAdmin())
	assert.Equal(t, "Dr. Sharma", st.TeacherName())
	assert.Equal(t, issued.Token, st.TeacherToken())

	admin := NewLoginView(models.RoleAdmin, b.client(), &session.State{}, Deps{})
	assert.False(t, admin.Submit(ctx, "admin", "wrong"))
	assert.Equal(t, "Invalid credentials", admin.State.Error)
	assert.Equal(t, "admin", admin.State.Username)

	// a teacher token handed to the admin form is refused
	b.on(http.MethodPost, "/admin/login", http.StatusOK, `{"success":true,"message":"Login successful","token":"`+issued.Token+`"}`)
	assert.False(t, admin.Submit(ctx, "admin", "admin123"))
	assert.Equal(t, "Login failed", admin.State.Error)

	teacher.Logout()
	assert.False(t, st.IsTeacher())
	assert.True(t, st.IsAdmin())

	b.srv.Close()
	assert.False(t, teacher.Submit(ctx, "teacher", "teacher123"))
	assert.Equal(t, "Login failed", teacher.State.Error)
}

func TestNavigation(t *testing.T) {
	st := &session.State{Page: session.PageJobs}
	items := Navigation(st)
	require.Len(t, items, 10)
	assert.Equal(t, NavItem{Page: session.PageHome, Label: "Home", Href: "/"}, items[0])
	assert.True(t, items[4].Active)
	assert.Equal(t, "Teacher Login", items[8].Label)
	assert.Equal(t, "Admin Login", items[9].Label)

	st.Teacher = &session.Capability{Role: models.RoleTeacher, Name: "Dr. Rao"}
	st.Admin = &session.Capability{Role: models.RoleAdmin}
	items = Navigation(st)
	assert.Equal(t, "Teacher (Dr. Rao)", items[8].Label)
	assert.Equal(t, "Admin Panel", items[9].Label)
	assert.Equal(t, "/admin", items[9].Href)
}

func TestFormatting(t *testing.T) {
	pkg := 1200000.5
	assert.Equal(t, "₹1200000.5", RupeesOf(&pkg))
	assert.Equal(t, "₹", RupeesOf(nil))
	assert.Equal(t, "Infinity", Percentage(models.Placement{StudentsPlaced: 3}))
	assert.Equal(t, "33.33", Percentage(models.Placement{StudentsPlaced: 1, TotalStudents: 3}))

	assert.Equal(t, "1/15/2024", PostedDate("2024-01-15T10:00:00Z", time.UTC))
	assert.Equal(t, "1/15/2024", PostedDate("Mon, 15 Jan 2024 10:00:00 GMT", time.UTC))
	assert.Equal(t, "3/5/2024", PostedDate("2024-03-05", time.UTC))
	assert.Equal(t, "Invalid Date", PostedDate("", time.UTC))
	assert.Equal(t, "Invalid Date", PostedDate("soon", time.UTC))

	year := 2
	assert.Equal(t, "2", OptionalInt(&year))
	assert.Equal(t, "", OptionalInt(nil))
}

func amount(v float64) *float64 { return &v }
