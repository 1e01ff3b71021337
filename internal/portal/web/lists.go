package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeportal/internal/portal/session"
	"github.com/yigit/collegeportal/internal/portal/views"
)

// listPage serves one list resource: the page itself and its form actions.
type listPage[T any] struct {
	h        *Handler
	res      views.Resource[T]
	template string
	title    string
}

// formConfirm answers a confirmation from the submitted form and remembers the question asked.
type formConfirm struct {
	answer bool
	prompt string
}

func (f *formConfirm) Confirm(prompt string) bool {
	f.prompt = prompt
	return f.answer
}

type confirmPage struct {
	Prompt string
	Action string
	Back   string
}

func (p listPage[T]) register(r gin.IRoutes) {
	base := views.Href(p.res.Page)
	r.GET(base, p.show)
	if p.res.CanMutate == nil {
		return
	}
	r.POST(base+"/form", p.toggle)
	r.POST(base+"/submit", p.submit)
	r.POST(base+"/edit/:id", p.edit)
	if p.res.Deletable {
		r.POST(base+"/delete/:id", p.remove)
	}
}

func (p listPage[T]) open(c *gin.Context, confirm views.Confirmer) (*views.ListView[T], *record[views.ListState[T]], *session.State, error) {
	rec := &record[views.ListState[T]]{}
	st, found, err := p.h.enter(c, p.res.Page, rec)
	if err != nil {
		return nil, nil, st, err
	}

	view := views.NewListView(p.res, p.h.api, st, p.h.deps(&rec.Alerts, confirm))
	if found {
		view.State = rec.View
	} else {
		view.Mount(c.Request.Context())
	}
	return view, rec, st, nil
}

func (p listPage[T]) show(c *gin.Context) {
	view, rec, st, err := p.open(c, views.Decline)
	if err != nil {
		p.h.fail(c, err)
		return
	}

	alerts := rec.Alerts
	rec.Alerts = nil
	rec.View = view.State
	if err := p.h.commit(c, st, p.res.Page, rec); err != nil {
		p.h.fail(c, err)
		return
	}
	p.h.render(c, p.template, p.title, st, alerts, view)
}

// act runs one action against the page and redirects back to it.
func (p listPage[T]) act(c *gin.Context, confirm views.Confirmer, action func(*views.ListView[T])) (*views.ListView[T], bool) {
	view, rec, st, err := p.open(c, confirm)
	if err != nil {
		p.h.fail(c, err)
		return nil, false
	}

	action(view)

	rec.View = view.State
	if err := p.h.commit(c, st, p.res.Page, rec); err != nil {
		p.h.fail(c, err)
		return nil, false
	}
	return view, true
}

func (p listPage[T]) toggle(c *gin.Context) {
	if _, ok := p.act(c, views.Decline, func(v *views.ListView[T]) { v.ToggleForm() }); ok {
		p.h.redirect(c, p.res.Page)
	}
}

func (p listPage[T]) edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := p.act(c, views.Decline, func(v *views.ListView[T]) { v.Edit(id) }); ok {
		p.h.redirect(c, p.res.Page)
	}
}

func (p listPage[T]) submit(c *gin.Context) {
	_, ok := p.act(c, views.Decline, func(v *views.ListView[T]) {
		for _, field := range p.res.Fields {
			if value, posted := c.GetPostForm(field); posted {
				v.Change(field, value)
			}
		}
		v.Submit(c.Request.Context())
	})
	if ok {
		p.h.redirect(c, p.res.Page)
	}
}

// remove asks for confirmation first: without confirm=yes it renders the question and changes nothing.
func (p listPage[T]) remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	confirm := &formConfirm{answer: c.PostForm("confirm") == "yes"}
	view, ok := p.act(c, confirm, func(v *views.ListView[T]) { v.Delete(c.Request.Context(), id) })
	if !ok {
		return
	}
	if confirm.prompt != "" && !confirm.answer {
		p.h.render(c, "confirm", p.title, session.From(c), nil, confirmPage{
			Prompt: confirm.prompt,
			Action: c.Request.URL.Path,
			Back:   views.Href(view.Resource.Page),
		})
		return
	}
	p.h.redirect(c, p.res.Page)
}
