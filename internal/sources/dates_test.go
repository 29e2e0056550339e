package sources

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already ISO", "2025-01-15", "2025-01-15"},
		{"US slash full year", "01/15/2025", "2025-01-15"},
		{"US slash short year", "01/15/25", "2025-01-15"},
		{"unpadded month and day", "3/2/2025", "2025-03-02"},
		{"surrounding whitespace", "  2025-01-15  ", "2025-01-15"},
		{"unparseable passes through", "Pending", "Pending"},
		{"garbage passes through", "15 Jan 2025", "15 Jan 2025"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
