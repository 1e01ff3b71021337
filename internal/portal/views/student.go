package views

import (
	"context"
	"strings"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/portal/client"
)

const (
	rollNumberRequired = "Please enter a roll number"
	studentFetchFailed = "Failed to fetch student data"
)

// StudentState is the saved state of the student search page.
type StudentState struct {
	RollNumber string          `json:"roll_number"`
	Student    *models.Student `json:"student,omitempty"`
	Error      string          `json:"error,omitempty"`
	Loading    bool            `json:"loading"`
}

// StudentLookup finds one student at a time by roll number.
type StudentLookup struct {
	State StudentState

	api  *client.Client
	deps Deps
}

func NewStudentLookup(api *client.Client, deps Deps) *StudentLookup {
	return &StudentLookup{api: api, deps: deps.withDefaults()}
}

// Search looks rollNumber up. A blank roll number is rejected without a request and leaves any
// earlier result on screen.
func (v *StudentLookup) Search(ctx context.Context, rollNumber string) {
	v.State.RollNumber = rollNumber
	if strings.TrimSpace(rollNumber) == "" {
		v.State.Error = rollNumberRequired
		return
	}

	v.State.Loading = true
	v.State.Error = ""
	v.State.Student = nil

	res := v.api.SearchStudent(ctx, rollNumber)
	switch res.Kind {
	case client.Success:
		student := res.Data
		v.State.Student = &student
	case client.Failure:
		v.State.Error = res.Message
	default:
		v.deps.Logger.Debug().Err(res.Err).Msg("Student search failed")
		v.State.Error = studentFetchFailed
	}
	v.State.Loading = false
}
