package views

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/client"
	"github.com/yigit/collegeportal/internal/portal/session"
)

// Resource describes one list page: where its records live, which form fields it edits and who may
// change it. A Resource without CanMutate is read-only.
type Resource[T any] struct {
	Page     session.Page
	Endpoint string
	Fields   []string

	FetchFailed   string
	SubmitFailed  string
	DeleteFailed  string
	ConfirmDelete string
	Deletable     bool

	ID     func(T) int64
	ToForm func(T) map[string]string

	CanMutate func(*session.State) bool
	Token     func(*session.State) string
	// NeedsDepartments reports whether the page loads departments for its form.
	NeedsDepartments func(*session.State) bool
}

// BlankForm returns every field set to the empty string.
func (r Resource[T]) BlankForm() map[string]string {
	form := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		form[f] = ""
	}
	return form
}

func (r Resource[T]) hasField(name string) bool {
	for _, f := range r.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// ListState is the saved state of a list page.
type ListState[T any] struct {
	Items       []T                 `json:"items"`
	Loading     bool                `json:"loading"`
	Error       string              `json:"error,omitempty"`
	ShowForm    bool                `json:"show_form"`
	FormData    map[string]string   `json:"form_data"`
	EditingID   *int64              `json:"editing_id,omitempty"`
	Departments []models.Department `json:"departments,omitempty"`
}

// ListView drives a list page for one Resource.
type ListView[T any] struct {
	Resource Resource[T]
	State    ListState[T]

	api     *client.Client
	session *session.State
	deps    Deps
}

// NewListView creates a view bound to the caller's session. Call Mount or set State before use.
func NewListView[T any](res Resource[T], api *client.Client, st *session.State, deps Deps) *ListView[T] {
	return &ListView[T]{
		Resource: res,
		State:    ListState[T]{Loading: true, FormData: res.BlankForm()},
		api:      api,
		session:  st,
		deps:     deps.withDefaults(),
	}
}

// CanMutate reports whether the add, edit and delete affordances are offered.
func (v *ListView[T]) CanMutate() bool {
	return v.Resource.CanMutate != nil && v.Resource.CanMutate(v.session)
}

// Editing reports whether the form targets an existing record.
func (v *ListView[T]) Editing() bool {
	return v.State.EditingID != nil
}

// Field returns the current form value of name.
func (v *ListView[T]) Field(name string) string {
	return v.State.FormData[name]
}

// Mount resets the page and loads it: the list, and the departments when the form needs them.
func (v *ListView[T]) Mount(ctx context.Context) {
	v.State = ListState[T]{Loading: true, FormData: v.Resource.BlankForm()}
	v.refresh(ctx)
	if v.Resource.NeedsDepartments != nil && v.Resource.NeedsDepartments(v.session) {
		v.State.Departments = loadDepartments(ctx, v.api, v.deps)
	}
}

func (v *ListView[T]) refresh(ctx context.Context) {
	res := client.Fetch[[]T](ctx, v.api, v.Resource.Endpoint)
	switch res.Kind {
	case client.Success:
		v.State.Items = res.Data
	case client.Failure:
		v.State.Error = res.Message
	default:
		v.deps.Logger.Debug().Err(res.Err).Str("endpoint", v.Resource.Endpoint).Msg("List fetch failed")
		v.State.Error = v.Resource.FetchFailed
	}
	v.State.Loading = false
}

// ToggleForm shows or hides the form. Form data and the edit target are kept.
func (v *ListView[T]) ToggleForm() {
	if !v.CanMutate() {
		return
	}
	v.State.ShowForm = !v.State.ShowForm
}

// Change merges one field into the form data. Unknown fields are ignored.
func (v *ListView[T]) Change(name, value string) {
	if !v.Resource.hasField(name) {
		return
	}
	if v.State.FormData == nil {
		v.State.FormData = v.Resource.BlankForm()
	}
	v.State.FormData[name] = value
}

// Edit copies a listed record into the form and opens it.
func (v *ListView[T]) Edit(id int64) {
	if !v.CanMutate() {
		return
	}
	for _, item := range v.State.Items {
		if v.Resource.ID(item) != id {
			continue
		}
		form := v.Resource.BlankForm()
		for k, val := range v.Resource.ToForm(item) {
			form[k] = val
		}
		v.State.FormData = form
		v.State.EditingID = &id
		v.State.ShowForm = true
		return
	}
}

// Submit creates or updates a record from the form data. On success the form closes and resets
// and the list is fetched again; otherwise the form keeps what was entered.
func (v *ListView[T]) Submit(ctx context.Context) {
	if !v.CanMutate() {
		return
	}

	token := v.Resource.Token(v.session)
	var res client.Result[client.Ack]
	if v.State.EditingID != nil {
		res = v.api.Update(ctx, v.Resource.Endpoint, *v.State.EditingID, token, v.State.FormData)
	} else {
		res = v.api.Create(ctx, v.Resource.Endpoint, token, v.State.FormData)
	}

	switch res.Kind {
	case client.Success:
		v.deps.Notifier.Notify(res.Message)
		v.State.ShowForm = false
		v.State.EditingID = nil
		v.State.FormData = v.Resource.BlankForm()
		v.refresh(ctx)
	case client.Failure:
		v.deps.Notifier.Notify("Error: " + res.Message)
	default:
		v.deps.Logger.Debug().Err(res.Err).Str("endpoint", v.Resource.Endpoint).Msg("Submit failed")
		v.deps.Notifier.Notify(v.Resource.SubmitFailed)
	}
}

// Delete removes a record after the user confirms, then fetches the list again. The list is never
// changed locally.
func (v *ListView[T]) Delete(ctx context.Context, id int64) {
	if !v.Resource.Deletable || !v.CanMutate() {
		return
	}
	if !v.deps.Confirmer.Confirm(v.Resource.ConfirmDelete) {
		return
	}

	res := v.api.Delete(ctx, v.Resource.Endpoint, id, v.Resource.Token(v.session))
	switch res.Kind {
	case client.Success:
		v.deps.Notifier.Notify(res.Message)
		v.refresh(ctx)
	case client.Failure:
		v.deps.Notifier.Notify("Error: " + res.Message)
	default:
		v.deps.Logger.Debug().Err(res.Err).Str("endpoint", v.Resource.Endpoint).Msg("Delete failed")
		v.deps.Notifier.Notify(v.Resource.DeleteFailed)
	}
}

// loadDepartments fetches the department list for a select input. Failures are only logged.
func loadDepartments(ctx context.Context, api *client.Client, deps Deps) []models.Department {
	res := api.Departments(ctx)
	switch res.Kind {
	case client.Success:
		return res.Data
	case client.Failure:
		deps.Logger.Warn().Str("message", res.Message).Msg("Failed to fetch departments")
	default:
		deps.Logger.Warn().Err(res.Err).Msg("Failed to fetch departments")
	}
	return nil
}
