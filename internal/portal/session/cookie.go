package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	stateKey   = "state"
	contextKey = "portal.session"
)

// NewCookieStore keeps the session in a signed cookie that lives as long as the browser session.
func NewCookieStore(secret string, secure bool) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Middleware loads the State of the request's session, drops expired capabilities and makes it
// available through From. It must run after sessions.Sessions.
func Middleware(now func() time.Time, lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := load(sessions.Default(c), lgr)
		if st.DropExpired(now()) {
			lgr.Info().Str("session", st.ID).Msg("Expired capability dropped")
		}
		c.Set(contextKey, st)
		c.Next()
	}
}

// From returns the State loaded by Middleware, or a fresh one when the middleware did not run.
func From(c *gin.Context) *State {
	if v, ok := c.Get(contextKey); ok {
		if st, ok := v.(*State); ok {
			return st
		}
	}
	st := &State{ID: uuid.NewString(), Page: PageHome}
	c.Set(contextKey, st)
	return st
}

// Save writes the State back to the session cookie. Call it before the response is written.
func Save(c *gin.Context, st *State) error {
	encoded, err := json.Marshal(st)
	if err != nil {
		return err
	}
	s := sessions.Default(c)
	s.Set(stateKey, string(encoded))
	return s.Save()
}

func load(s sessions.Session, lgr zerolog.Logger) *State {
	st := &State{}
	if raw, ok := s.Get(stateKey).(string); ok {
		if err := json.Unmarshal([]byte(raw), st); err != nil {
			lgr.Warn().Err(err).Msg("Discarding unreadable session state")
			st = &State{}
		}
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if !st.Page.Valid() {
		st.Page = PageHome
	}
	return st
}
