package types

import "testing"

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"   ", "-"},
		{"2025-03-09T14:22:00Z", "09/03/2025"},
		{"2025-03-09", "09/03/2025"},
		{"0001-01-01T00:00:00Z", "-"},
		{"0001-01-01", "-"},
		{"not-a-date", "not-a-date"},
		{"garbage value", "garbage"},
	}

	for _, tt := range tests {
		if got := FormatDisplayDate(tt.in); got != tt.want {
			t.Fatalf("FormatDisplayDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
