package manifest

import (
	"strings"
)

// Process is one declared process: an identifier and the command template it
// runs. The template may reference environment entries as $NAME or ${NAME}.
type Process struct {
	ID      string
	Command string
}

// ValidateProcs checks every line of a process manifest and returns whether
// it is well formed plus every offending line found. Duplicate ids are
// tracked across the whole manifest: a reuse is flagged even when the first
// occurrence was itself offending.
func ValidateProcs(lines []string) (bool, []Offense) {
	_, offenses := ParseProcs(lines)
	return len(offenses) == 0, offenses
}

// ParseProcs parses a process manifest into Process entries in declaration
// order, collecting an Offense for every malformed line. Only lines that
// pass every check contribute an entry.
func ParseProcs(lines []string) ([]Process, []Offense) {
	var procs []Process
	var offenses []Offense
	seen := make(map[string]bool)

	for i, raw := range lines {
		line := Normalize(raw)
		if line == "" {
			continue
		}

		id, command, err := checkProcLine(line, seen)
		if err != nil {
			offenses = append(offenses, Offense{Line: i + 1, Text: line, Err: err})
			continue
		}

		procs = append(procs, Process{ID: id, Command: command})
	}

	return procs, offenses
}

// checkProcLine applies the process manifest rules to one normalized,
// non-blank line. The seen set accumulates every id encountered, including
// ids from lines rejected for other reasons.
func checkProcLine(line string, seen map[string]bool) (id, command string, err error) {
	left, right, found := strings.Cut(line, ":")
	if !found {
		return "", "", ErrMissingSeparator
	}

	id = strings.TrimSpace(left)
	command = strings.TrimSpace(right)

	if id == "" {
		return "", "", ErrEmptyName
	}

	duplicate := seen[id]
	seen[id] = true

	if command == "" {
		return "", "", ErrEmptyCommand
	}
	if !alphaNameRegex.MatchString(id) {
		return "", "", ErrInvalidName
	}
	if duplicate {
		return "", "", ErrDuplicateID
	}

	// Backgrounding is the launcher's job; an embedded '&' would detach the
	// command from pid capture.
	if strings.HasSuffix(command, "&") {
		return "", "", ErrBackgroundMarker
	}

	return id, command, nil
}
