package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models"
)

type recorded struct {
	method string
	path   string
	auth   string
	body   map[string]string
}

func newBackend(t *testing.T, status int, reply string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.EscapedPath(), auth: r.Header.Get("Authorization")}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, &rec.body))
		}
		calls = append(calls, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 0), &calls
}

func TestFetch_Success(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, `{"success":true,"data":[{"dept_id":1,"dept_name":"Computer Science","dept_code":"CSE"}]}`)

	res := c.Departments(context.Background())

	require.True(t, res.OK())
	assert.Equal(t, []models.Department{{DeptID: 1, DeptName: "Computer Science", DeptCode: "CSE"}}, res.Data)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/api/departments", (*calls)[0].path)
	assert.Empty(t, (*calls)[0].auth)
}

func TestFetch_FailureEnvelopeOnErrorStatus(t *testing.T) {
	c, _ := newBackend(t, http.StatusNotFound, `{"success":false,"message":"Student not found"}`)

	res := c.SearchStudent(context.Background(), "ZZ999")

	assert.Equal(t, Failure, res.Kind)
	assert.Equal(t, "Student not found", res.Message)
}

func TestFetch_TransportOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"html body", `<html>Bad Gateway</html>`},
		{"missing success flag", `{"data":[]}`},
		{"data of the wrong shape", `{"success":true,"data":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newBackend(t, http.StatusOK, tt.reply)
			res := Fetch[[]models.Placement](context.Background(), c, "/placements")
			assert.Equal(t, Transport, res.Kind)
			assert.Error(t, res.Err)
		})
	}

	unreachable := New("http://127.0.0.1:1/api", time.Second)
	assert.Equal(t, Transport, unreachable.Faculty(context.Background()).Kind)
}

func TestSearchStudent_EscapesRollNumber(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, `{"success":true,"data":{"roll_number":"CS/101"}}`)

	res := c.SearchStudent(context.Background(), "CS/101")

	require.True(t, res.OK())
	assert.Equal(t, "/api/students/search/CS%2F101", (*calls)[0].path)
}

func TestMutations_SendFormAndToken(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, `{"success":true,"message":"Job notification added successfully","job_id":9}`)
	form := map[string]string{"company_name": "Acme", "position": "SDE", "package": ""}

	res := c.Create(context.Background(), "/jobs", "tok", form)
	require.True(t, res.OK())
	assert.Equal(t, "Job notification added successfully", res.Message)

	c.Update(context.Background(), "/jobs", 9, "tok", form)
	c.Delete(context.Background(), "/jobs", 9, "tok")

	require.Len(t, *calls, 3)
	assert.Equal(t, recorded{method: http.MethodPost, path: "/api/jobs", auth: "Bearer tok", body: form}, (*calls)[0])
	assert.Equal(t, http.MethodPut, (*calls)[1].method)
	assert.Equal(t, "/api/jobs/9", (*calls)[1].path)
	assert.Equal(t, http.MethodDelete, (*calls)[2].method)
	assert.Nil(t, (*calls)[2].body)
}

func TestLogin(t *testing.T) {
	expires := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	c, calls := newBackend(t, http.StatusOK, `{"success":true,"message":"Login successful","teacher_id":3,"name":"Dr. Sharma","token":"abc","expires_at":"2024-01-15T18:00:00Z"}`)

	res := c.Login(context.Background(), models.RoleTeacher, "teacher", "teacher123")

	require.True(t, res.OK())
	assert.Equal(t, LoginData{ID: 3, Name: "Dr. Sharma", Token: "abc", ExpiresAt: expires}, res.Data)
	assert.Equal(t, "/api/teacher/login", (*calls)[0].path)
	assert.Equal(t, map[string]string{"username": "teacher", "password": "teacher123"}, (*calls)[0].body)

	c, _ = newBackend(t, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`)
	res = c.Login(context.Background(), models.RoleAdmin, "admin", "nope")
	assert.Equal(t, Failure, res.Kind)
	assert.Equal(t, "Invalid credentials", res.Message)

	c, _ = newBackend(t, http.StatusBadGateway, `upstream down`)
	assert.Equal(t, Transport, c.Login(context.Background(), models.RoleAdmin, "admin", "x").Kind)
}
