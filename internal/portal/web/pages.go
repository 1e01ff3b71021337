package web

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/session"
	"github.com/yigit/collegeportal/internal/portal/views"
)

// Students shows the roll number search and the last result.
func (h *Handler) Students(c *gin.Context) {
	rec := &record[views.StudentState]{}
	st, _, err := h.enter(c, session.PageStudents, rec)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.commit(c, st, session.PageStudents, rec); err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "students", "Student Search", st, nil, rec.View)
}

// SearchStudent runs a roll number search.
func (h *Handler) SearchStudent(c *gin.Context) {
	rec := &record[views.StudentState]{}
	st, found, err := h.enter(c, session.PageStudents, rec)
	if err != nil {
		h.fail(c, err)
		return
	}

	lookup := views.NewStudentLookup(h.api, h.deps(&rec.Alerts, views.Decline))
	if found {
		lookup.State = rec.View
	}
	lookup.Search(c.Request.Context(), c.PostForm("roll_number"))

	rec.View = lookup.State
	if err := h.commit(c, st, session.PageStudents, rec); err != nil {
		h.fail(c, err)
		return
	}
	h.redirect(c, session.PageStudents)
}

// Faculty shows faculty grouped by department. The dept query parameter changes the filter.
func (h *Handler) Faculty(c *gin.Context) {
	rec := &record[views.FacultyState]{}
	st, found, err := h.enter(c, session.PageFaculty, rec)
	if err != nil {
		h.fail(c, err)
		return
	}

	view := views.NewFacultyView(h.api, h.deps(&rec.Alerts, views.Decline))
	if found {
		view.State = rec.View
	} else {
		view.Mount(c.Request.Context())
	}
	if dept, ok := c.GetQuery("dept"); ok {
		view.Filter(dept)
	}

	rec.View = view.State
	if err := h.commit(c, st, session.PageFaculty, rec); err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "faculty", "Faculty Information", st, nil, view)
}

type loginPage struct {
	Role     models.Role
	Title    string
	LoggedIn bool
	State    views.LoginState
}

func pageOf(role models.Role) session.Page {
	if role == models.RoleAdmin {
		return session.PageAdmin
	}
	return session.PageTeacher
}

func loginTitle(role models.Role) string {
	if role == models.RoleAdmin {
		return "Admin Login"
	}
	return "Teacher Login"
}

// Panel shows the login form of role, or its welcome panel once logged in.
func (h *Handler) Panel(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageOf(role)
		rec := &record[views.LoginState]{}
		st, _, err := h.enter(c, p, rec)
		if err != nil {
			h.fail(c, err)
			return
		}
		if err := h.commit(c, st, p, rec); err != nil {
			h.fail(c, err)
			return
		}

		loggedIn := st.IsTeacher()
		if role == models.RoleAdmin {
			loggedIn = st.IsAdmin()
		}
		h.render(c, "panel", loginTitle(role), st, nil, loginPage{
			Role:     role,
			Title:    loginTitle(role),
			LoggedIn: loggedIn,
			State:    rec.View,
		})
	}
}

// Login exchanges the posted credentials for a capability of role.
func (h *Handler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageOf(role)
		rec := &record[views.LoginState]{}
		st, _, err := h.enter(c, p, rec)
		if err != nil {
			h.fail(c, err)
			return
		}

		view := views.NewLoginView(role, h.api, st, h.deps(&rec.Alerts, views.Decline))
		view.Submit(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))

		rec.View = view.State
		if err := h.commit(c, st, p, rec); err != nil {
			h.fail(c, err)
			return
		}
		h.redirect(c, p)
	}
}

// Logout drops the capability of role and nothing else.
func (h *Handler) Logout(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageOf(role)
		rec := &record[views.LoginState]{}
		st, _, err := h.enter(c, p, rec)
		if err != nil {
			h.fail(c, err)
			return
		}

		views.NewLoginView(role, h.api, st, h.deps(&rec.Alerts, views.Decline)).Logout()

		if err := h.commit(c, st, p, rec); err != nil {
			h.fail(c, err)
			return
		}
		h.logger.Info().Str("role", string(role)).Str("session", st.ID).Msg("Logged out")
		h.redirect(c, p)
	}
}
