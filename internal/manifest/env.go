package manifest

import (
	"regexp"
	"strings"
)

// alphaNameRegex matches valid entry names: ASCII letters only.
var alphaNameRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// EnvEntry is one name/value pair from an environment manifest.
type EnvEntry struct {
	Name  string
	Value string
}

// ValidateEnv checks every line of an environment manifest and returns
// whether it is well formed plus every offending line found. All lines are
// checked; a defect never short-circuits the pass.
func ValidateEnv(lines []string) (bool, []Offense) {
	_, offenses := ParseEnv(lines)
	return len(offenses) == 0, offenses
}

// ParseEnv parses an environment manifest into entries, collecting an
// Offense for every malformed line. Entries are returned in declaration
// order; only lines that pass every check contribute an entry.
func ParseEnv(lines []string) ([]EnvEntry, []Offense) {
	var entries []EnvEntry
	var offenses []Offense

	for i, raw := range lines {
		line := Normalize(raw)
		if line == "" {
			continue
		}

		if err := checkEnvLine(line); err != nil {
			offenses = append(offenses, Offense{Line: i + 1, Text: line, Err: err})
			continue
		}

		name, value, _ := strings.Cut(line, "=")
		entries = append(entries, EnvEntry{Name: name, Value: unquote(value)})
	}

	return entries, offenses
}

// checkEnvLine applies the environment manifest rules to one normalized,
// non-blank line.
func checkEnvLine(line string) error {
	name, value, found := strings.Cut(line, "=")
	if !found {
		return ErrMissingSeparator
	}

	trimmedName := strings.TrimSpace(name)
	trimmedValue := strings.TrimSpace(value)

	if trimmedName == "" {
		return ErrEmptyName
	}
	if trimmedValue == "" {
		return ErrEmptyValue
	}

	// The trimmed halves plus the separator must account for the whole
	// line: any shortfall means stray blanks around '='.
	if len(trimmedName)+len(trimmedValue)+1 != len(line) {
		return ErrStrayBlank
	}

	if !alphaNameRegex.MatchString(trimmedName) {
		return ErrInvalidName
	}

	return nil
}

// unquote strips a matching pair of surrounding quotes from a value. A value
// beginning with a quote character is a quoted literal; if the closing quote
// is absent the value is returned as-is.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if q := value[0]; q == '"' || q == '\'' {
		if value[len(value)-1] == q {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// EnvMap converts entries to a name -> value lookup map. Later entries win
// on duplicate names, mirroring shell assignment order.
func EnvMap(entries []EnvEntry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Value
	}
	return m
}
