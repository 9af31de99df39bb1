package ai

import "testing"

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"risk": "high"}`,
			want:  `{"risk": "high"}`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n{\"risk\": \"high\"}\n```",
			want:  `{"risk": "high"}`,
		},
		{
			name:  "bare fence stripped",
			input: "```\n{\"risk\": \"low\"}\n```",
			want:  `{"risk": "low"}`,
		},
		{
			name:  "surrounding prose trimmed to braces",
			input: "Here is the verdict: {\"risk\": \"medium\"} hope that helps!",
			want:  `{"risk": "medium"}`,
		},
		{
			name:  "no json left as is",
			input: "cannot answer",
			want:  "cannot answer",
		},
		{
			name:  "whitespace trimmed",
			input: "  \n{\"a\": 1}\n ",
			want:  `{"a": 1}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSON(tc.input); got != tc.want {
				t.Errorf("CleanJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
