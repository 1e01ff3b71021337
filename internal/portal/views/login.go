package views

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/session"
)

const loginFailed = "Login failed"

// LoginState is the saved state of a login form. The password is never kept.
type LoginState struct {
	Username string `json:"username"`
	Error    string `json:"error,omitempty"`
}

// LoginView exchanges credentials for a capability of one role.
type LoginView struct {
	Role  models.Role
	State LoginState

	api     *client.Client
	session *session.State
	deps    Deps
}

func NewLoginView(role models.Role, api *client.Client, st *session.State, deps Deps) *LoginView {
	return &LoginView{Role: role, api: api, session: st, deps: deps.withDefaults()}
}

// Submit logs in and, on success, grants the capability to the session. The other role's
// capability is left alone.
func (v *LoginView) Submit(ctx context.Context, username, password string) bool {
	v.State.Username = username
	v.State.Error = ""

	res := v.api.Login(ctx, v.Role, username, password)
	switch res.Kind {
	case client.Failure:
		v.State.Error = res.Message
		return false
	case client.Transport:
		v.deps.Logger.Debug().Err(res.Err).Str("role", string(v.Role)).Msg("Login request failed")
		v.State.Error = loginFailed
		return false
	}

	capability, err := session.NewCapability(res.Data.Token, res.Data.Name)
	if err == nil && capability.Role != v.Role {
		err = errRoleMismatch
	}
	if err == nil {
		err = v.session.Grant(capability)
	}
	if err != nil {
		v.deps.Logger.Warn().Err(err).Str("role", string(v.Role)).Msg("Login returned an unusable token")
		v.State.Error = loginFailed
		return false
	}

	v.deps.Logger.Info().Str("role", string(v.Role)).Str("username", username).Msg("Logged in")
	v.State = LoginState{}
	return true
}

// Logout clears this role's capability.
func (v *LoginView) Logout() {
	v.session.Revoke(v.Role)
}
