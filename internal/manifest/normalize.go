package manifest

import "strings"

// Normalize strips comments and surrounding whitespace from a raw manifest
// line. The line is truncated at the first '#' and trimmed on both ends.
// An empty input yields an empty output.
func Normalize(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
