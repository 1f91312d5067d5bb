// Package format holds the small value formatters shared by every resume
// template: dates, skill gauges, proficiency labels and link labels.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateLayout indicates an unusable date layout string.
var ErrInvalidDateLayout = errors.New("invalid date layout")

// MaxDateLayoutLength bounds user supplied layouts.
const MaxDateLayoutLength = 32

// DefaultDateLayout is used when settings leave the layout empty.
const DefaultDateLayout = "MMM YYYY"

// Present is shown as the end of an ongoing range.
const Present = "Present"

// dateTokens is ordered longest first for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named shortcuts accepted wherever a layout is.
var DatePresets = map[string]string{
	"short":   "MMM YYYY",
	"long":    "MMMM YYYY",
	"numeric": "MM/YYYY",
	"year":    "YYYY",
}

// inputLayouts are the shapes accepted for stored dates, most specific first.
var inputLayouts = []struct {
	layout   string
	hasMonth bool
}{
	{time.RFC3339, true},
	{"2006-01-02", true},
	{"2006-01", true},
	{"01/2006", true},
	{"1/2006", true},
	{"2006", false},
}

// ParseDateLayout converts a token layout such as "MMM YYYY" into a Go time
// layout. Text inside brackets is copied literally; other characters that
// are not tokens pass through unchanged.
func ParseDateLayout(layout string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(layout)]; ok {
		layout = preset
	}
	if layout == "" {
		return "", fmt.Errorf("%w: layout cannot be empty", ErrInvalidDateLayout)
	}
	if len(layout) > MaxDateLayoutLength {
		return "", fmt.Errorf("%w: layout exceeds %d characters", ErrInvalidDateLayout, MaxDateLayoutLength)
	}

	var b strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			end := strings.IndexByte(layout[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateLayout, i)
			}
			b.WriteString(layout[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(layout[i:], tok.token) {
				b.WriteString(tok.goFmt)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(layout[i])
			i++
		}
	}
	return b.String(), nil
}

// Date formats a stored date with the given token layout. Values that are
// not recognised dates are returned trimmed but otherwise untouched, so free
// text such as "Summer 2019" survives. A year-only value is always rendered
// as the bare year.
func Date(value, layout string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	goLayout, err := ParseDateLayout(layout)
	if err != nil {
		goLayout, _ = ParseDateLayout(DefaultDateLayout)
	}
	for _, in := range inputLayouts {
		t, err := time.Parse(in.layout, value)
		if err != nil {
			continue
		}
		if !in.hasMonth {
			return t.Format("2006")
		}
		return t.Format(goLayout)
	}
	return value
}

// DateRange renders "start – end". An ongoing range ends with Present; a
// missing bound collapses the range to the other bound.
func DateRange(start, end string, current bool, layout string) string {
	return DateRangeWith(start, end, current, layout, Present)
}

// DateRangeWith is DateRange with a translated word for an ongoing end.
func DateRangeWith(start, end string, current bool, layout, present string) string {
	from := Date(start, layout)
	to := Date(end, layout)
	if current {
		to = present
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	case from == to:
		return from
	}
	return from + " – " + to
}
