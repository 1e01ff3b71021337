package views

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/yigit/collegeportal/internal/portal/client"
)

type call struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]string
}

// fakeBackend answers canned envelopes and records every request.
type fakeBackend struct {
	mu     sync.Mutex
	calls  []call
	routes map[string]func() (int, string)
	srv    *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{routes: make(map[string]func() (int, string))}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	c := call{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &c.Body)
	}

	b.mu.Lock()
	b.calls = append(b.calls, c)
	route, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"message":"Resource not found"}`)
		return
	}
	status, body := route()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// on registers a fixed reply for method and path (path is relative to /api).
func (b *fakeBackend) on(method, path string, status int, body string) {
	b.onFunc(method, path, func() (int, string) { return status, body })
}

func (b *fakeBackend) onFunc(method, path string, reply func() (int, string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" /api"+path] = reply
}

func (b *fakeBackend) client() *client.Client {
	return client.New(b.srv.URL+"/api", 0)
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Method == method && c.Path == "/api"+path {
			n++
		}
	}
	return n
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *fakeBackend) last() call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[len(b.calls)-1]
}

// callsTo returns the recorded requests to method and path.
func (b *fakeBackend) callsTo(method, path string) []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []call
	for _, c := range b.calls {
		if c.Method == method && c.Path == "/api"+path {
			out = append(out, c)
		}
	}
	return out
}
