package session

import (
	"fmt"
	"time"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

// Page identifies one screen of the portal.
type Page string

const (
	PageHome         Page = "home"
	PageStudents     Page = "students"
	PageFaculty      Page = "faculty"
	PagePlacements   Page = "placements"
	PageJobs         Page = "jobs"
	PageInternships  Page = "internships"
	PageExaminations Page = "examinations"
	PageAlumni       Page = "alumni"
	PageTeacher      Page = "teacher"
	PageAdmin        Page = "admin"
)

// Pages lists every page in navigation order.
var Pages = []Page{
	PageHome, PageStudents, PageFaculty, PagePlacements, PageJobs,
	PageInternships, PageExaminations, PageAlumni, PageTeacher, PageAdmin,
}

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// Capability is a bearer token the backend issued on login, with the claims the portal needs to
// display and expire it.
type Capability struct {
	Role      models.Role `json:"role"`
	Token     string      `json:"token"`
	Name      string      `json:"name,omitempty"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the capability is no longer accepted at now.
func (c *Capability) Expired(now time.Time) bool {
	return c == nil || (!c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt))
}

// NewCapability reads role, name and expiry from the token. The name falls back to the one the login
// response carried when the claims have none.
func NewCapability(token, name string) (*Capability, error) {
	claims, err := auth.ParseUnverified(token)
	if err != nil {
		return nil, fmt.Errorf("read capability claims: %w", err)
	}

	capability := &Capability{Role: claims.Role, Token: token, Name: claims.Name}
	if capability.Name == "" {
		capability.Name = name
	}
	if claims.ExpiresAt != nil {
		capability.ExpiresAt = claims.ExpiresAt.Time
	}
	return capability, nil
}

// State is everything the portal remembers about one browser: the current page and the two
// independent login capabilities.
type State struct {
	ID      string      `json:"id"`
	Page    Page        `json:"page"`
	Admin   *Capability `json:"admin,omitempty"`
	Teacher *Capability `json:"teacher,omitempty"`
}

// IsAdmin reports whether the admin capability is held.
func (s *State) IsAdmin() bool {
	return s.Admin != nil
}

// IsTeacher reports whether the teacher capability is held.
func (s *State) IsTeacher() bool {
	return s.Teacher != nil
}

// IsStaff reports whether either capability is held.
func (s *State) IsStaff() bool {
	return s.IsAdmin() || s.IsTeacher()
}

// TeacherName is the display name for the teacher navigation label.
func (s *State) TeacherName() string {
	if s.Teacher == nil {
		return ""
	}
	return s.Teacher.Name
}

// TeacherToken is attached to placement mutations.
func (s *State) TeacherToken() string {
	if s.Teacher == nil {
		return ""
	}
	return s.Teacher.Token
}

// StaffToken is attached to job and examination mutations; the admin token wins when both are held.
func (s *State) StaffToken() string {
	if s.Admin != nil {
		return s.Admin.Token
	}
	return s.TeacherToken()
}

// Grant stores a capability in the slot of its role. The other slot is untouched.
func (s *State) Grant(c *Capability) error {
	switch c.Role {
	case models.RoleAdmin:
		s.Admin = c
	case models.RoleTeacher:
		s.Teacher = c
	default:
		return fmt.Errorf("unknown capability role %q", c.Role)
	}
	return nil
}

// Revoke clears the capability of one role.
func (s *State) Revoke(role models.Role) {
	switch role {
	case models.RoleAdmin:
		s.Admin = nil
	case models.RoleTeacher:
		s.Teacher = nil
	}
}

// DropExpired clears capabilities whose token has expired and reports whether anything changed.
func (s *State) DropExpired(now time.Time) bool {
	changed := false
	if s.Admin != nil && s.Admin.Expired(now) {
		s.Admin = nil
		changed = true
	}
	if s.Teacher != nil && s.Teacher.Expired(now) {
		s.Teacher = nil
		changed = true
	}
	return changed
}

// Navigate switches the current page and reports whether it changed. The caller drops the
// per-page state of the page left behind.
func (s *State) Navigate(p Page) bool {
	if s.Page == p {
		return false
	}
	s.Page = p
	return true
}
