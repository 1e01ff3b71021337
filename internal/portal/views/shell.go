package views

import (
	"errors"

	"github.com/yigit/collegeportal/internal/portal/session"
)

var errRoleMismatch = errors.New("token role does not match the login form")

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Page   session.Page
	Label  string
	Href   string
	Active bool
}

var navLabels = map[session.Page]string{
	session.PageHome:         "Home",
	session.PageStudents:     "Students",
	session.PageFaculty:      "Faculty",
	session.PagePlacements:   "Placements",
	session.PageJobs:         "Jobs",
	session.PageInternships:  "Internships",
	session.PageExaminations: "Examinations",
	session.PageAlumni:       "Alumni",
}

// Href is the portal path of a page.
func Href(p session.Page) string {
	if p == session.PageHome {
		return "/"
	}
	return "/" + string(p)
}

// Navigation builds the navigation bar for the session. The last two entries reflect the login state.
func Navigation(st *session.State) []NavItem {
	items := make([]NavItem, 0, len(session.Pages))
	for _, p := range session.Pages {
		label := navLabels[p]
		switch p {
		case session.PageTeacher:
			label = "Teacher Login"
			if st.IsTeacher() {
				label = "Teacher (" + st.TeacherName() + ")"
			}
		case session.PageAdmin:
			label = "Admin Login"
			if st.IsAdmin() {
				label = "Admin Panel"
			}
		}
		items = append(items, NavItem{Page: p, Label: label, Href: Href(p), Active: st.Page == p})
	}
	return items
}
