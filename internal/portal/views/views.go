// Package views holds the portal's screen logic: what each page fetches, which actions it offers and
// how it reacts to the three kinds of backend outcome. It knows nothing about HTTP rendering.
package views

import (
	"github.com/rs/zerolog"
)

// Notifier shows a message the user must acknowledge.
type Notifier interface {
	Notify(message string)
}

// Confirmer asks a yes/no question and reports the answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Alerts collects notifications until they are rendered.
type Alerts []string

// Notify appends message.
func (a *Alerts) Notify(message string) {
	*a = append(*a, message)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Decline answers no to every question.
var Decline = ConfirmFunc(func(string) bool { return false })

// Deps are the collaborators a view reports to.
type Deps struct {
	Notifier  Notifier
	Confirmer Confirmer
	Logger    zerolog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = &Alerts{}
	}
	if d.Confirmer == nil {
		d.Confirmer = Decline
	}
	return d
}
