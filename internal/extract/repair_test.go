package extract

import (
	"encoding/json"
	"testing"
)

func TestRepairTruncatedJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "truncated mid-string",
			input: `[{"date":"2025-01-01","description":"X`,
			want:  `[{"date":"2025-01-01","description":"X"}]`,
		},
		{
			name:  "balanced input unchanged",
			input: `[{"date":"2025-01-01"}]`,
			want:  `[{"date":"2025-01-01"}]`,
		},
		{
			name:  "trailing comma after object",
			input: `[{"date":"2025-01-01"},`,
			want:  `[{"date":"2025-01-01"}]`,
		},
		{
			name:  "truncated after value",
			input: `[{"date":"2025-01-01","amount":12.5`,
			want:  `[{"date":"2025-01-01","amount":12.5}]`,
		},
		{
			name:  "escaped quote does not close string",
			input: `[{"description":"JOE\"S DINER`,
			want:  `[{"description":"JOE\"S DINER"}]`,
		},
		{
			name:  "trailing whitespace trimmed before closing",
			input: "[{\"date\":\"2025-01-01\"},\n  ",
			want:  `[{"date":"2025-01-01"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairTruncatedJSON(tt.input)
			if got != tt.want {
				t.Errorf("RepairTruncatedJSON() = %q, want %q", got, tt.want)
			}
			var parsed []map[string]any
			if err := json.Unmarshal([]byte(got), &parsed); err != nil {
				t.Errorf("repaired output does not parse: %v", err)
			}
		})
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain array untouched",
			input: `[{"date":"2025-01-01"}]`,
			want:  `[{"date":"2025-01-01"}]`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n[{\"date\":\"2025-01-01\"}]\n```",
			want:  `[{"date":"2025-01-01"}]`,
		},
		{
			name:  "prose around array discarded",
			input: "Here are the transactions:\n[{\"date\":\"2025-01-01\"}]\nLet me know!",
			want:  `[{"date":"2025-01-01"}]`,
		},
		{
			name:  "truncated tail preserved for repair",
			input: "```json\n[{\"date\":\"2025-01-01\",\"description\":\"X",
			want:  `[{"date":"2025-01-01","description":"X`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanResponse(tt.input); got != tt.want {
				t.Errorf("cleanResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}
