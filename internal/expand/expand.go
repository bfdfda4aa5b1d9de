// Package expand resolves $NAME and ${NAME} references in command templates
// against an environment map, with auto-incrementing allocation for the
// reserved PORT variable.
package expand

import (
	"regexp"
	"strconv"
)

// PortVar is the reserved environment name whose value comes from the shared
// port counter rather than the environment map.
const PortVar = "PORT"

// refRegex matches a $NAME or ${NAME} reference. Group 1 captures a braced
// name, group 2 a bare name.
var refRegex = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// Counter is the shared port counter. It is owned by the manifest driver and
// advanced only by Expand; access is serialized by the driver loop, so no
// locking is needed.
type Counter struct {
	value int
}

// NewCounter returns a counter seeded with the given port.
func NewCounter(seed int) *Counter {
	return &Counter{value: seed}
}

// Value returns the current port without advancing.
func (c *Counter) Value() int {
	return c.value
}

// advance increments the counter by one.
func (c *Counter) advance() {
	c.value++
}

// Expand substitutes every $NAME/${NAME} reference in template and returns
// the substituted command plus whether every reference resolved. Distinct
// reference tokens are processed in order of first appearance; each PORT
// reference consumes the counter's current value and advances it, so the new
// value is visible to every later expansion. An unresolved reference
// substitutes the empty string and flips ok to false, but expansion continues
// and the degraded command is still returned.
func Expand(template string, env map[string]string, counter *Counter) (expanded string, ok bool) {
	expanded = template
	ok = true

	for _, token := range distinctRefs(template) {
		var value string
		if token.name == PortVar {
			value = strconv.Itoa(counter.Value())
		} else {
			value = env[token.name]
		}
		if value == "" {
			ok = false
		}

		expanded = token.replaceAll(expanded, value)

		if token.name == PortVar {
			counter.advance()
		}
	}

	return expanded, ok
}

// ref is one distinct reference token found in a template.
type ref struct {
	name   string
	braced bool
}

// replaceAll substitutes every occurrence of the token in s with value. The
// bare form must not swallow a longer name sharing its prefix, so it matches
// on a trailing word boundary; the braced form is an exact literal.
func (r ref) replaceAll(s, value string) string {
	var pat *regexp.Regexp
	if r.braced {
		pat = regexp.MustCompile(`\$\{` + r.name + `\}`)
	} else {
		pat = regexp.MustCompile(`\$` + r.name + `\b`)
	}
	return pat.ReplaceAllLiteralString(s, value)
}

// distinctRefs scans a template and returns its distinct reference tokens in
// order of first appearance. $NAME and ${NAME} are distinct tokens even for
// the same name.
func distinctRefs(template string) []ref {
	var refs []ref
	seen := make(map[ref]bool)

	for _, m := range refRegex.FindAllStringSubmatch(template, -1) {
		r := ref{name: m[1], braced: true}
		if m[1] == "" {
			r = ref{name: m[2], braced: false}
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		refs = append(refs, r)
	}

	return refs
}
