// Package timeparsing provides layered time parsing for the date filters
// accepted by `linear issue list`.
//
// Layers are tried in order:
//  1. Compact duration (+6h, -1d, 2w)
//  2. Absolute timestamp (RFC3339, then date-only)
//  3. Natural language (yesterday, last monday, 3 days ago)
package timeparsing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// compactDurationRe matches [+-]?(\d+)([hdwmy]), e.g. +6h, -1d, 2w, 3m, 1y.
var compactDurationRe = regexp.MustCompile(`^([+-]?)(\d+)([hdwmy])$`)

// ParseCompactDuration offsets now by a compact duration. Units are h
// (hours), d (days), w (weeks), m (months) and y (years); an unsigned
// amount is positive. Days and larger units follow calendar arithmetic, so
// "+1m" from January 31 lands in early March.
func ParseCompactDuration(s string, now time.Time) (time.Time, error) {
	m := compactDurationRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("not a compact duration: %q", s)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration amount %q: %w", m[2], err)
	}
	if m[1] == "-" {
		n = -n
	}

	switch m[3] {
	case "h":
		return now.Add(time.Duration(n) * time.Hour), nil
	case "d":
		return now.AddDate(0, 0, n), nil
	case "w":
		return now.AddDate(0, 0, 7*n), nil
	case "m":
		return now.AddDate(0, n, 0), nil
	default: // "y"
		return now.AddDate(n, 0, 0), nil
	}
}

// IsCompactDuration reports whether s uses compact duration syntax.
func IsCompactDuration(s string) bool {
	return compactDurationRe.MatchString(s)
}
