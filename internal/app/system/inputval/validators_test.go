package inputval

import "testing"

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"  https://example.com  ", true},

		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"file:///path/to/file", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsValidHTTPURL(tt.url); got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"000000000000000000000000", true},
		{"  507f1f77bcf86cd799439011  ", true},

		{"", false},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507f1f77bcf86cd79943901g", false},
		{"not-a-valid-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidObjectID(tt.id); got != tt.want {
				t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIsValidProgramStatus(t *testing.T) {
	valid := []string{"ongoing", "upcoming", "completed", "ONGOING", "  completed  "}
	for _, s := range valid {
		if !IsValidProgramStatus(s) {
			t.Errorf("IsValidProgramStatus(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "   ", "paused", "done", "draft"}
	for _, s := range invalid {
		if IsValidProgramStatus(s) {
			t.Errorf("IsValidProgramStatus(%q) = true, want false", s)
		}
	}
}

func TestIsValidISODate(t *testing.T) {
	valid := []string{"2026-10-01", "2000-01-31", " 2026-02-28 "}
	for _, s := range valid {
		if !IsValidISODate(s) {
			t.Errorf("IsValidISODate(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "01/10/2026", "2026-13-01", "2026-02-30", "yesterday"}
	for _, s := range invalid {
		if IsValidISODate(s) {
			t.Errorf("IsValidISODate(%q) = true, want false", s)
		}
	}
}
