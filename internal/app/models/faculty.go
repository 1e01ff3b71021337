package models

import "sort"

// FacultyMember is one teaching staff row.
type FacultyMember struct {
	FacultyID     int64  `json:"faculty_id"`
	Name          string `json:"name"`
	DeptID        *int64 `json:"dept_id"`
	Designation   string `json:"designation"`
	Experience    int    `json:"experience"`
	Qualification string `json:"qualification"`
	Email         string `json:"email"`
}

// FacultyByDepartment maps a department name to its members in display order.
type FacultyByDepartment map[string][]FacultyMember

// Departments returns the department names sorted the way the backend orders them.
func (f FacultyByDepartment) Departments() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
