// Package manifest parses and validates forerun's process and environment
// manifests. A process manifest ("Procfile") declares one <id>:<command>
// entry per line; an environment manifest (".env") declares one <NAME>=<value>
// entry per line. Blank lines and '#' comments are ignored in both.
package manifest

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrMissingSeparator = errors.New("missing separator")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidName      = errors.New("name must be alphabetic")
	ErrEmptyValue       = errors.New("value cannot be empty")
	ErrStrayBlank       = errors.New("whitespace around separator")
	ErrEmptyCommand     = errors.New("command cannot be empty")
	ErrDuplicateID      = errors.New("duplicate process id")
	ErrBackgroundMarker = errors.New("command must not end with '&'")
)

// Offense records one offending manifest line. Validators aggregate every
// offense found in a single pass rather than stopping at the first.
type Offense struct {
	// Line is the 1-based line number in the manifest file.
	Line int
	// Text is the normalized line that failed validation.
	Text string
	// Err classifies the failure (one of the package sentinel errors).
	Err error
}

func (o Offense) Error() string {
	return fmt.Sprintf("line %d: %q: %s", o.Line, o.Text, o.Err)
}

func (o Offense) Unwrap() error {
	return o.Err
}
