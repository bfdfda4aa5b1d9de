package manifest

import (
	"errors"
	"testing"
)

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr error // sentinel expected on the first offense, nil for ok
	}{
		{"empty manifest", nil, nil},
		{"single entry", []string{"HOST=localhost"}, nil},
		{"several entries", []string{"HOST=localhost", "PORT=3000"}, nil},
		{"blank lines skipped", []string{"", "HOST=localhost", "   "}, nil},
		{"comments skipped", []string{"# defaults", "HOST=localhost"}, nil},
		{"value with equals", []string{"OPTS=a=b"}, nil},
		{"quoted value", []string{`GREETING="hello there"`}, nil},
		{"no separator", []string{"HOST localhost"}, ErrMissingSeparator},
		{"empty name", []string{"=localhost"}, ErrEmptyName},
		{"empty value", []string{"HOST="}, ErrEmptyValue},
		{"blank before separator", []string{"HOST =localhost"}, ErrStrayBlank},
		{"blank after separator", []string{"HOST= localhost"}, ErrStrayBlank},
		{"digit in name", []string{"HOST2=localhost"}, ErrInvalidName},
		{"underscore in name", []string{"MY_HOST=localhost"}, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, offenses := ValidateEnv(tt.lines)
			if tt.wantErr == nil {
				if !ok {
					t.Fatalf("ValidateEnv(%v) not ok, offenses: %v", tt.lines, offenses)
				}
				return
			}
			if ok {
				t.Fatalf("ValidateEnv(%v) ok, want offense %v", tt.lines, tt.wantErr)
			}
			if !errors.Is(offenses[0], tt.wantErr) {
				t.Errorf("offense = %v, want %v", offenses[0], tt.wantErr)
			}
		})
	}
}

func TestValidateEnv_AggregatesAllOffenses(t *testing.T) {
	lines := []string{
		"HOST localhost", // no separator
		"GOOD=value",
		"=empty",  // empty name
		"BLANK= ", // empty value (blank after trim)
	}

	ok, offenses := ValidateEnv(lines)
	if ok {
		t.Fatal("expected validation failure")
	}
	if len(offenses) != 3 {
		t.Fatalf("got %d offenses, want 3: %v", len(offenses), offenses)
	}
	if offenses[0].Line != 1 || offenses[1].Line != 3 || offenses[2].Line != 4 {
		t.Errorf("offense lines = %d,%d,%d, want 1,3,4",
			offenses[0].Line, offenses[1].Line, offenses[2].Line)
	}
}

// Lines that pass validation must keep passing when normalized again: the
// validator is idempotent over its own accepted input.
func TestValidateEnv_Idempotent(t *testing.T) {
	lines := []string{"HOST=localhost  # trailing comment", "  PORT=3000  "}

	ok, _ := ValidateEnv(lines)
	if !ok {
		t.Fatal("initial validation failed")
	}

	normalized := make([]string, len(lines))
	for i, l := range lines {
		normalized[i] = Normalize(l)
	}

	ok, offenses := ValidateEnv(normalized)
	if !ok {
		t.Fatalf("re-validation of normalized lines failed: %v", offenses)
	}
}

func TestParseEnv(t *testing.T) {
	lines := []string{
		"# defaults",
		"HOST=localhost",
		"PORT=3000",
		`QUOTED="hello world"`,
		`SINGLE='quoted too'`,
		`UNTERMINATED="half`,
	}

	entries, offenses := ParseEnv(lines)
	if len(offenses) != 0 {
		t.Fatalf("unexpected offenses: %v", offenses)
	}

	want := []EnvEntry{
		{"HOST", "localhost"},
		{"PORT", "3000"},
		{"QUOTED", "hello world"},
		{"SINGLE", "quoted too"},
		{"UNTERMINATED", `"half`},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestEnvMap_LaterEntriesWin(t *testing.T) {
	entries := []EnvEntry{{"HOST", "first"}, {"HOST", "second"}}
	m := EnvMap(entries)
	if m["HOST"] != "second" {
		t.Errorf(`m["HOST"] = %q, want "second"`, m["HOST"])
	}
}
