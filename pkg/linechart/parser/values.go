// Package parser reads samples from JSON datasets and xlsx workbooks.
package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearLayouts are tried in order when parsing a year cell.
var yearLayouts = []string{
	"2006",
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"01-02-06",
}

// ParseYear parses a year string such as "1990" into 1 January of that year, UTC.
// Full dates are kept as given; integral numbers ("1990.0") are read as years.
func ParseYear(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingField
	}
	for _, layout := range yearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && f >= 0 && f <= 9999 {
		return yearOf(int(f)), nil
	}
	return time.Time{}, fmt.Errorf("not a year")
}

// thousandsGrouping matches numbers grouped with "," every three digits, e.g. 1,234.5.
var thousandsGrouping = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseValue parses a numeric string, ignoring surrounding space. A "," is only
// accepted as a thousands separator; decimal commas such as "1,5" are rejected.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingField
	}
	if thousandsGrouping.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	return v, nil
}

func yearOf(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}
