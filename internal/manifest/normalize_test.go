package manifest

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "web: bin/server", "web: bin/server"},
		{"leading whitespace", "  web: bin/server", "web: bin/server"},
		{"trailing whitespace", "web: bin/server   ", "web: bin/server"},
		{"full comment", "# a comment", ""},
		{"trailing comment", "web: bin/server # serves http", "web: bin/server"},
		{"only whitespace", "   \t  ", ""},
		{"comment after whitespace", "   # note", ""},
		{"hash mid-token truncates", "web: run#now", "web: run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
