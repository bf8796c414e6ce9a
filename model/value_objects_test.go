package model

import (
	"slices"
	"testing"
	"time"
)

// TestNewDueDate tests the NewDueDate function
func TestNewDueDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    time.Time
		description string
	}{
		{
			name:        "RFC3339",
			input:       "2025-05-21T14:30:00Z",
			expected:    time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC),
			description: "RFC3339形式で成功すること",
		},
		{
			name:        "Date only",
			input:       "2025-05-21",
			expected:    time.Date(2025, 5, 21, 0, 0, 0, 0, time.Local),
			description: "日付のみの形式はローカル時刻の0時になること",
		},
		{
			name:        "Invalid",
			input:       "21/05/2025",
			expectError: true,
			description: "不正な形式はエラーになること",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := NewDueDate(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("%s: expected error but got nil", tt.description)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.description, err)
			}
			if !due.Time().Equal(tt.expected) {
				t.Errorf("%s: expected %v, got %v", tt.description, tt.expected, due.Time())
			}
		})
	}
}

// TestNewDueDateEmpty tests that an empty string defaults to now
func TestNewDueDateEmpty(t *testing.T) {
	before := time.Now()
	due, err := NewDueDate("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if due.Time().Before(before) || due.Time().After(time.Now()) {
		t.Errorf("Expected current time, got %v", due.Time())
	}
}

// TestParsePositions tests the ParsePositions function
func TestParsePositions(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
		expected    []int
	}{
		{name: "Separate args", args: []string{"1", "3"}, expected: []int{1, 3}},
		{name: "Comma separated", args: []string{"1,3", " 0 "}, expected: []int{1, 3, 0}},
		{name: "Empty parts", args: []string{",,2,"}, expected: []int{2}},
		{name: "No args", args: nil, expected: nil},
		{name: "Not a number", args: []string{"x"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePositions(tt.args)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !slices.Equal(p.Values(), tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, p.Values())
			}
		})
	}
}

// TestPositionsNormalize tests sorting, deduplication and range filtering
func TestPositionsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		n        int
		expected []int
	}{
		{name: "Sorted unique", values: []int{3, 1}, n: 4, expected: []int{1, 3}},
		{name: "Duplicates", values: []int{2, 2, 0, 2}, n: 4, expected: []int{0, 2}},
		{name: "Out of range", values: []int{-1, 4, 1, 100}, n: 4, expected: []int{1}},
		{name: "Empty sequence", values: []int{0}, n: 0, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPositions(tt.values...)
			got := p.Normalize(tt.n)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if p.IsEmpty() != (len(tt.values) == 0) {
				t.Errorf("IsEmpty mismatch for %v", tt.values)
			}
		})
	}
}
