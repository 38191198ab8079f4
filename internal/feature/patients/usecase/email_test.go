package usecase

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple two-word name", "Nico Robin", "nico.robin"},
		{"single word", "Zoro", "zoro"},
		{"already lowercase", "nami", "nami"},
		{"periods collapse with spaces", "Dr. John Doe", "dr.john.doe"},
		{"multiple consecutive separators", "Monkey  D.  Luffy", "monkey.d.luffy"},
		{"leading and trailing separators", "  Brook  ", "brook"},
		{"only separators", "...", ""},
		{"mixed case", "NiCo RoBiN", "nico.robin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugify(tt.input); got != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
