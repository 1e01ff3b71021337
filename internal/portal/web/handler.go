package web

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/session"
	"github.com/yigit/collegeportal/internal/portal/views"
)

//go:embed content/home.md
var homeMarkdown []byte

// Handler serves the portal pages.
type Handler struct {
	api      *client.Client
	store    session.Store
	logger   zerolog.Logger
	location *time.Location
	home     template.HTML
	csrf     bool
}

// NewHandler renders the static home page once and returns a handler that reads through api and
// keeps page state in store.
func NewHandler(api *client.Client, store session.Store, lgr zerolog.Logger, csrfEnabled bool) (*Handler, error) {
	var home bytes.Buffer
	if err := goldmark.Convert(homeMarkdown, &home); err != nil {
		return nil, err
	}
	return &Handler{
		api:      api,
		store:    store,
		logger:   lgr,
		location: time.Local,
		home:     template.HTML(home.String()),
		csrf:     csrfEnabled,
	}, nil
}

// record is what is saved per page: the view state and alerts waiting to be shown.
type record[S any] struct {
	View   S            `json:"view"`
	Alerts views.Alerts `json:"alerts,omitempty"`
}

// page is the data every template receives.
type page struct {
	Title   string
	Nav     []views.NavItem
	Alerts  []string
	CSRF    template.HTML
	Session *session.State
	Content any
}

// enter moves the session to p, dropping the state of any other page, and loads the saved record
// of p into rec. It reports whether a record was found.
func (h *Handler) enter(c *gin.Context, p session.Page, rec any) (*session.State, bool, error) {
	st := session.From(c)
	if st.Navigate(p) {
		if err := h.store.Clear(c.Request.Context(), st.ID); err != nil {
			return st, false, err
		}
		return st, false, nil
	}
	found, err := h.store.Load(c.Request.Context(), st.ID, p, rec)
	return st, found, err
}

// commit saves the page record and the session cookie. It must run before anything is written.
func (h *Handler) commit(c *gin.Context, st *session.State, p session.Page, rec any) error {
	if err := h.store.Save(c.Request.Context(), st.ID, p, rec); err != nil {
		return err
	}
	return session.Save(c, st)
}

func (h *Handler) render(c *gin.Context, name, title string, st *session.State, alerts []string, content any) {
	data := page{
		Title:   title,
		Nav:     views.Navigation(st),
		Alerts:  alerts,
		Session: st,
		Content: content,
	}
	if h.csrf {
		data.CSRF = csrf.TemplateField(c.Request)
	}
	c.HTML(http.StatusOK, name, data)
}

func (h *Handler) redirect(c *gin.Context, p session.Page) {
	c.Redirect(http.StatusSeeOther, views.Href(p))
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Portal request failed")
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// deps builds the collaborators of one request's view.
func (h *Handler) deps(alerts *views.Alerts, confirm views.Confirmer) views.Deps {
	return views.Deps{Notifier: alerts, Confirmer: confirm, Logger: h.logger}
}

var errBadID = errors.New("invalid record id")

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// Home shows the static welcome page.
func (h *Handler) Home(c *gin.Context) {
	st := session.From(c)
	if st.Navigate(session.PageHome) {
		if err := h.store.Clear(c.Request.Context(), st.ID); err != nil {
			h.fail(c, err)
			return
		}
	}
	if err := session.Save(c, st); err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "home", "Home", st, nil, h.home)
}
