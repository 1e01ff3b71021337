package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/portal/session"
	"github.com/yigit/collegeportal/internal/portal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures the portal router.
type Options struct {
	SessionName    string
	SessionStore   sessions.Store
	CSRFKey        []byte
	TrustedOrigins []string
	SecureCookies  bool
	Metrics        *middleware.HTTPMetrics
	MetricsPath    string
	Now            func() time.Time
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates(loc *time.Location) (*template.Template, error) {
	funcs := template.FuncMap{
		"rupees":      views.Rupees,
		"rupeesOf":    views.RupeesOf,
		"percentage":  views.Percentage,
		"optionalInt": views.OptionalInt,
		"postedDate": func(raw string) string {
			return views.PostedDate(raw, loc)
		},
	}
	return template.New("portal").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// NewRouter wires the portal pages behind sessions, CSRF protection and request metrics.
func NewRouter(h *Handler, opts Options) (*gin.Engine, error) {
	tmpl, err := LoadTemplates(h.location)
	if err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	}))
	router.Use(middleware.RequestLogger(h.logger))

	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET(opts.MetricsPath, opts.Metrics.Handler())
	}

	pages := router.Group("/")
	pages.Use(sessions.Sessions(opts.SessionName, opts.SessionStore))
	if h.csrf {
		pages.Use(protect(opts))
	}
	pages.Use(session.Middleware(opts.Now, h.logger))

	pages.GET("/", h.Home)
	pages.GET("/students", h.Students)
	pages.POST("/students/search", h.SearchStudent)
	pages.GET("/faculty", h.Faculty)

	listPage[models.Placement]{h: h, res: views.Placements, template: "placements", title: "Placement Statistics"}.register(pages)
	listPage[models.Job]{h: h, res: views.Jobs, template: "jobs", title: "Job Notifications"}.register(pages)
	listPage[models.Internship]{h: h, res: views.Internships, template: "internships", title: "Internship Opportunities"}.register(pages)
	listPage[models.Examination]{h: h, res: views.Examinations, template: "examinations", title: "Examination Timetable"}.register(pages)
	listPage[models.Alumnus]{h: h, res: views.Alumni, template: "alumni", title: "Alumni Network"}.register(pages)
	pages.GET("/placements/export.xlsx", h.ExportPlacements)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleTeacher} {
		pages.GET(views.Href(pageOf(role)), h.Panel(role))
		pages.POST(views.Href(pageOf(role))+"/login", h.Login(role))
		pages.POST("/logout/"+string(role), h.Logout(role))
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})

	return router, nil
}

// protect adapts gorilla/csrf to gin. Without TLS the request is marked plaintext so the
// Referer check meant for HTTPS is skipped.
func protect(opts Options) gin.HandlerFunc {
	csrfOpts := []csrf.Option{
		csrf.Path("/"),
		csrf.Secure(opts.SecureCookies),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := "invalid CSRF token"
			if err := csrf.FailureReason(r); err != nil {
				reason = err.Error()
			}
			http.Error(w, "Forbidden - "+reason, http.StatusForbidden)
		})),
	}
	if len(opts.TrustedOrigins) > 0 {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins(opts.TrustedOrigins))
	}
	wrap := csrf.Protect(opts.CSRFKey, csrfOpts...)

	return func(c *gin.Context) {
		req := c.Request
		if !opts.SecureCookies && req.TLS == nil {
			req = csrf.PlaintextHTTPRequest(req)
		}

		passed := false
		wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, req)
		if !passed {
			c.Abort()
		}
	}
}
