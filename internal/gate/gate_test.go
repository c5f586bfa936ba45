package gate

import (
	"errors"
	"testing"
)

func TestFirstNonOK(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		expected int
	}{
		{"empty", nil, 0},
		{"all ok", []int{0, 0, 0}, 0},
		{"single failure", []int{0, -2, 0}, -2},
		{"first of several", []int{0, -1, -2, -3}, -1},
		{"failure first", []int{-3, 0, -1}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonOK(tt.codes); got != tt.expected {
				t.Errorf("FirstNonOK(%v) = %d, want %d", tt.codes, got, tt.expected)
			}
		})
	}
}

func TestLastNonOK(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		expected int
	}{
		{"empty", nil, 0},
		{"all ok", []int{0, 0, 0}, 0},
		{"single failure", []int{0, 1, 0}, 1},
		{"last of several", []int{1, 0, 2, 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastNonOK(tt.codes); got != tt.expected {
				t.Errorf("LastNonOK(%v) = %d, want %d", tt.codes, got, tt.expected)
			}
		})
	}
}

func TestAggregationPoliciesDiffer(t *testing.T) {
	// The two policies must disagree when failures differ across the scan.
	codes := []int{0, -1, 0, -3}
	if first, last := FirstNonOK(codes), LastNonOK(codes); first == last {
		t.Errorf("expected policies to differ, both returned %d", first)
	}
}

func TestExit(t *testing.T) {
	if err := Exit(0); err != nil {
		t.Errorf("Exit(0) = %v, want nil", err)
	}
	err := Exit(-2)
	if err == nil {
		t.Fatal("Exit(-2) = nil, want error")
	}
	var ee *ExitError
	if !errors.As(err, &ee) || ee.Code != -2 {
		t.Errorf("Exit(-2) = %v, want ExitError{-2}", err)
	}
}

func TestCodeFrom(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"structural error", errors.New("boom"), 1},
		{"exit error positive", &ExitError{Code: 2}, 2},
		{"exit error too-short", &ExitError{Code: -1}, 255},
		{"exit error missing", &ExitError{Code: -2}, 254},
		{"exit error incomplete", &ExitError{Code: -3}, 253},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFrom(tt.err); got != tt.expected {
				t.Errorf("CodeFrom(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
