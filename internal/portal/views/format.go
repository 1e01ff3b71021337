package views

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/yigit/collegeportal/internal/app/models"
)

const rupee = "₹"

// Rupees prints an amount the way a browser prints a number: no grouping, no trailing zeros.
func Rupees(amount float64) string {
	return rupee + formatNumber(amount)
}

// RupeesOf prints an optional amount; a missing one leaves just the symbol.
func RupeesOf(amount *float64) string {
	if amount == nil {
		return rupee
	}
	return Rupees(*amount)
}

// Percentage renders the placement percentage to two decimals. A zero total is not guarded and
// prints as NaN or Infinity.
func Percentage(p models.Placement) string {
	v := p.Percentage()
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

var postedLayouts = []string{time.RFC3339Nano, http.TimeFormat, "2006-01-02 15:04:05", "2006-01-02"}

// PostedDate renders a timestamp as M/D/YYYY in loc, or "Invalid Date" when it cannot be read.
func PostedDate(raw string, loc *time.Location) string {
	for _, layout := range postedLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if loc != nil {
			t = t.In(loc)
		}
		return t.Format("1/2/2006")
	}
	return "Invalid Date"
}

// OptionalInt prints a nullable integer, or nothing.
func OptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// The form* helpers copy a record value into a form field. Zero values become empty, the way a
// falsy value falls back to '' in the form.

func formInt(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func formIntPtr(v *int64) string {
	if v == nil {
		return ""
	}
	return formInt(*v)
}

func formSmallIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return formInt(int64(*v))
}

func formFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return formatNumber(v)
}

func formFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formFloat(*v)
}
