// Package model provides value objects for command-line parameter validation.
package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DueDate represents a due date value object.
type DueDate struct {
	value time.Time
}

// NewDueDate creates a new due date value object.
// An empty string means "now", matching the creation form's default.
func NewDueDate(dateStr string) (*DueDate, error) {
	if dateStr == "" {
		return &DueDate{value: time.Now()}, nil
	}

	t, err := parseDateTime(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid due date. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
	}
	return &DueDate{value: t}, nil
}

// Time returns the time value.
func (d *DueDate) Time() time.Time {
	return d.value
}

// parseDateTime parses date string with flexible format support.
func parseDateTime(dateStr string) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	// Date-only values are taken in local time, like a date picker.
	if t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// Positions represents a set of zero-based list positions.
type Positions struct {
	values []int
}

// NewPositions creates a position set from its values.
func NewPositions(values ...int) *Positions {
	return &Positions{values: slices.Clone(values)}
}

// ParsePositions parses position arguments such as "0", "2" or "1,3".
func ParsePositions(args []string) (*Positions, error) {
	var values []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid position %q: must be an integer", part)
			}
			values = append(values, n)
		}
	}
	return &Positions{values: values}, nil
}

// Values returns the positions as given.
func (p *Positions) Values() []int {
	return p.values
}

// IsEmpty checks if the set has no positions.
func (p *Positions) IsEmpty() bool {
	return len(p.values) == 0
}

// Normalize returns the positions that address a sequence of length n,
// sorted ascending with duplicates removed. Out-of-range positions are dropped.
func (p *Positions) Normalize(n int) []int {
	out := make([]int, 0, len(p.values))
	for _, v := range p.values {
		if v >= 0 && v < n {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
