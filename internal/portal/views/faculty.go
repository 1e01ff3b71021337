package views

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/client"
)

// AllDepartments is the filter value that shows every group.
const AllDepartments = "all"

const facultyFetchFailed = "Failed to fetch faculty data"

// FacultyState is the saved state of the faculty page.
type FacultyState struct {
	Grouped     models.FacultyByDepartment `json:"grouped"`
	Departments []models.Department        `json:"departments,omitempty"`
	Selected    string                     `json:"selected"`
	Loading     bool                       `json:"loading"`
	Error       string                     `json:"error,omitempty"`
}

// FacultyGroup is one rendered department heading and its members.
type FacultyGroup struct {
	Department string
	Members    []models.FacultyMember
}

// FacultyView lists faculty grouped by department with a department filter.
type FacultyView struct {
	State FacultyState

	api  *client.Client
	deps Deps
}

func NewFacultyView(api *client.Client, deps Deps) *FacultyView {
	return &FacultyView{
		State: FacultyState{Selected: AllDepartments, Loading: true},
		api:   api,
		deps:  deps.withDefaults(),
	}
}

// Mount loads the grouped faculty and the departments for the filter.
func (v *FacultyView) Mount(ctx context.Context) {
	v.State = FacultyState{Selected: AllDepartments, Loading: true}

	res := v.api.Faculty(ctx)
	switch res.Kind {
	case client.Success:
		v.State.Grouped = res.Data
	case client.Failure:
		v.State.Error = res.Message
	default:
		v.deps.Logger.Debug().Err(res.Err).Msg("Faculty fetch failed")
		v.State.Error = facultyFetchFailed
	}
	v.State.Loading = false

	v.State.Departments = loadDepartments(ctx, v.api, v.deps)
}

// Filter selects a department name, or AllDepartments.
func (v *FacultyView) Filter(department string) {
	if department == "" {
		department = AllDepartments
	}
	v.State.Selected = department
}

// Groups returns the groups that pass the filter, in department name order.
func (v *FacultyView) Groups() []FacultyGroup {
	var groups []FacultyGroup
	for _, name := range v.State.Grouped.Departments() {
		if v.State.Selected != AllDepartments && v.State.Selected != name {
			continue
		}
		groups = append(groups, FacultyGroup{Department: name, Members: v.State.Grouped[name]})
	}
	return groups
}
