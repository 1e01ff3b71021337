package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issue(t *testing.T, account *models.Account, ttl time.Duration) *auth.IssuedToken {
	t.Helper()
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: ttl, TokenIssuer: "test"})
	issued, err := jwt.IssueToken(account)
	require.NoError(t, err)
	return issued
}

func TestNewCapability(t *testing.T) {
	issued := issue(t, &models.Account{ID: 3, Username: "teacher", Name: "Dr. Sharma", Role: models.RoleTeacher}, time.Hour)

	capability, err := NewCapability(issued.Token, "ignored")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, capability.Role)
	assert.Equal(t, "Dr. Sharma", capability.Name)
	assert.WithinDuration(t, issued.ExpiresAt, capability.ExpiresAt, time.Second)

	_, err = NewCapability("garbage", "")
	assert.Error(t, err)
}

func TestState_CapabilitiesAreIndependent(t *testing.T) {
	admin, err := NewCapability(issue(t, &models.Account{ID: 1, Username: "admin", Role: models.RoleAdmin}, time.Hour).Token, "")
	require.NoError(t, err)
	teacher, err := NewCapability(issue(t, &models.Account{ID: 2, Username: "teacher", Role: models.RoleTeacher}, time.Hour).Token, "Dr. Rao")
	require.NoError(t, err)

	st := &State{}
	require.NoError(t, st.Grant(admin))
	require.NoError(t, st.Grant(teacher))
	assert.True(t, st.IsAdmin())
	assert.True(t, st.IsTeacher())
	assert.Equal(t, admin.Token, st.StaffToken())
	assert.Equal(t, "Dr. Rao", st.TeacherName())

	st.Revoke(models.RoleAdmin)
	assert.False(t, st.IsAdmin())
	assert.True(t, st.IsTeacher())
	assert.Equal(t, teacher.Token, st.StaffToken())

	st.Revoke(models.RoleTeacher)
	assert.False(t, st.IsStaff())
	assert.Empty(t, st.StaffToken())

	assert.Error(t, st.Grant(&Capability{Role: "student"}))
}

func TestState_DropExpired(t *testing.T) {
	now := time.Now()
	st := &State{
		Admin:   &Capability{Role: models.RoleAdmin, ExpiresAt: now.Add(-time.Minute)},
		Teacher: &Capability{Role: models.RoleTeacher, ExpiresAt: now.Add(time.Minute)},
	}

	assert.True(t, st.DropExpired(now))
	assert.Nil(t, st.Admin)
	assert.NotNil(t, st.Teacher)
	assert.False(t, st.DropExpired(now))
}

func TestState_Navigate(t *testing.T) {
	st := &State{Page: PageHome}
	assert.True(t, st.Navigate(PageJobs))
	assert.False(t, st.Navigate(PageJobs))
	assert.Equal(t, PageJobs, st.Page)
	assert.False(t, Page("settings").Valid())
}

type pageState struct {
	Items []string `json:"items"`
}

func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()
	id := uuid.NewString()

	var got pageState
	found, err := store.Load(ctx, id, PageJobs, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, id, PageJobs, pageState{Items: []string{"a", "b"}}))
	found, err = store.Load(ctx, id, PageJobs, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got.Items)

	found, err = store.Load(ctx, id, PagePlacements, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Clear(ctx, id))
	found, err = store.Load(ctx, id, PageJobs, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), "s1", PageJobs, pageState{}))
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	var got pageState
	found, err := store.Load(context.Background(), "s1", PageJobs, &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, store.Len())
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseStore(t, NewRedisStore(client, "college_portal_test", time.Minute))
}

func TestCookieRoundTrip(t *testing.T) {
	now := time.Now()
	r := gin.New()
	r.Use(sessions.Sessions("portal", NewCookieStore("cookie-secret", false)), Middleware(func() time.Time { return now }, zerolog.Nop()))
	r.GET("/grant", func(c *gin.Context) {
		st := From(c)
		st.Navigate(PageJobs)
		require.NoError(t, st.Grant(&Capability{Role: models.RoleTeacher, Token: "tok", Name: "Dr. Rao", ExpiresAt: now.Add(time.Hour)}))
		require.NoError(t, Save(c, st))
		c.String(http.StatusOK, st.ID)
	})
	r.GET("/whoami", func(c *gin.Context) {
		st := From(c)
		c.String(http.StatusOK, st.ID+"|"+string(st.Page)+"|"+st.TeacherName())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grant", nil))
	id := rec.Body.String()
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, id+"|jobs|Dr. Rao", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.NotEqual(t, id+"|jobs|Dr. Rao", rec.Body.String())
	assert.Contains(t, rec.Body.String(), "|home|")
}
