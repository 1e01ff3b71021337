package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/auth"
	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// backend is a canned REST API that records what the portal asked for.
type backend struct {
	mu     sync.Mutex
	calls  []string
	bodies map[string]map[string]string
	routes map[string]func() (int, string)
	srv    *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{routes: map[string]func() (int, string){}, bodies: map[string]map[string]string{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
		var body map[string]string
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}

		b.mu.Lock()
		b.calls = append(b.calls, key)
		b.bodies[key] = body
		route, ok := b.routes[key]
		b.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"success":false,"message":"Resource not found"}`)
			return
		}
		status, reply := route()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) on(key string, status int, reply string) {
	b.onFunc(key, func() (int, string) { return status, reply })
}

func (b *backend) onFunc(key string, reply func() (int, string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = reply
}

func (b *backend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (b *backend) body(key string) map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

// loginReturns makes the login endpoint of role succeed with a real token.
func (b *backend) loginReturns(t *testing.T, role models.Role, name string) {
	t.Helper()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "backend", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	issued, err := jwt.IssueToken(&models.Account{ID: 1, Username: string(role), Name: name, Role: role})
	require.NoError(t, err)

	reply, err := json.Marshal(map[string]any{
		"success": true, "message": "Login successful", "name": name,
		"token": issued.Token, "expires_at": issued.ExpiresAt,
	})
	require.NoError(t, err)
	b.on("POST /"+string(role)+"/login", http.StatusOK, string(reply))
}

type portal struct {
	t       *testing.T
	srv     *httptest.Server
	browser *http.Client
	backend *backend
}

const testCSRFKey = "0123456789abcdef0123456789abcdef"

func newPortal(t *testing.T, csrfEnabled bool) *portal {
	t.Helper()
	b := newBackend(t)

	h, err := NewHandler(client.New(b.srv.URL+"/api", 0), session.NewMemoryStore(time.Hour), zerolog.Nop(), csrfEnabled)
	require.NoError(t, err)
	h.location = time.UTC

	router, err := NewRouter(h, Options{
		SessionName:  "portal",
		SessionStore: session.NewCookieStore("test-session-secret", false),
		CSRFKey:      []byte(testCSRFKey),
		Metrics:      middleware.NewHTTPMetrics("portal_test"),
		MetricsPath:  "/metrics",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &portal{t: t, srv: srv, browser: &http.Client{Jar: jar}, backend: b}
}

func (p *portal) read(resp *http.Response, err error) (*goquery.Document, int) {
	p.t.Helper()
	require.NoError(p.t, err)
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(p.t, err)
	return doc, resp.StatusCode
}

func (p *portal) get(path string) (*goquery.Document, int) {
	p.t.Helper()
	return p.read(p.browser.Get(p.srv.URL + path))
}

// post submits a form and follows the redirect back to the page, the way a browser does.
func (p *portal) post(path string, form url.Values) (*goquery.Document, int) {
	p.t.Helper()
	return p.read(p.browser.PostForm(p.srv.URL+path, form))
}

func (p *portal) login(role models.Role, name string) {
	p.t.Helper()
	p.backend.loginReturns(p.t, role, name)
	_, status := p.post("/"+string(role)+"/login", url.Values{"username": {string(role)}, "password": {"secret"}})
	require.Equal(p.t, http.StatusOK, status)
}

// texts returns the whitespace-normalized text of every match.
func texts(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.Join(strings.Fields(s.Text()), " "))
	})
	return out
}

func buttons(doc *goquery.Document) []string {
	return texts(doc, "button")
}
