package utils

import "testing"

func TestFormatSalary(t *testing.T) {
	testCases := []struct {
		input    float64
		expected string
	}{
		{100000, "$100,000"},
		{150000.4, "$150,000"},
		{999.5, "$1,000"},
		{0, "$0"},
		{1234567, "$1,234,567"},
	}

	for _, tc := range testCases {
		if got := FormatSalary(tc.input); got != tc.expected {
			t.Errorf("FormatSalary(%v): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestExperienceLevelName(t *testing.T) {
	if got := ExperienceLevelName("SE"); got != "Senior" {
		t.Errorf("expected Senior, got %q", got)
	}
	if got := ExperienceLevelName("XX"); got != "XX" {
		t.Errorf("unknown code should pass through, got %q", got)
	}
}
