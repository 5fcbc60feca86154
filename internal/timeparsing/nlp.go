package timeparsing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrFutureTime is returned by ParseSince for expressions that resolve
// after the reference time.
var ErrFutureTime = errors.New("time is in the future")

const dateOnly = "2006-01-02"

var nlpParser = newNLPParser()

func newNLPParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseNaturalLanguage parses English expressions such as "yesterday",
// "last monday" or "3 days ago" relative to now.
func ParseNaturalLanguage(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time expression")
	}
	r, err := nlpParser.Parse(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("no date or time found in %q", s)
	}
	return r.Time, nil
}

// ParseRelativeTime parses s with each layer in turn: compact duration,
// RFC3339, date-only (midnight in now's location), natural language.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time expression")
	}
	if IsCompactDuration(s) {
		return ParseCompactDuration(s, now)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateOnly, s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := ParseNaturalLanguage(s, now); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q: use a duration like -2w, a date like 2025-01-31, or a phrase like \"last monday\"", s)
}

// ParseSince parses a lower bound for "updated since" filters. An unsigned
// compact duration counts backwards, so "2w" means two weeks ago.
func ParseSince(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if IsCompactDuration(s) && s[0] != '+' && s[0] != '-' {
		s = "-" + s
	}
	t, err := ParseRelativeTime(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(now) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFutureTime, s)
	}
	return t, nil
}
