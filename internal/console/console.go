// Package console renders timestamped, per-process status lines, the
// human-readable output surface of the supervisor. Each process id gets a
// stable color from a rotating palette so interleaved output stays readable.
package console

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette is the rotating set of prefix colors, assigned to process ids in
// first-report order.
var palette = []lipgloss.Color{
	lipgloss.Color("6"), // cyan
	lipgloss.Color("3"), // yellow
	lipgloss.Color("2"), // green
	lipgloss.Color("5"), // magenta
	lipgloss.Color("1"), // red
	lipgloss.Color("4"), // blue
}

// systemStyle renders the supervisor's own status lines.
var systemStyle = lipgloss.NewStyle().Bold(true)

// Reporter writes status lines to a single writer. Safe for concurrent use;
// child output goroutines and the driver share one Reporter.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	styles map[string]lipgloss.Style
	next   int
	now    func() time.Time
}

// New creates a Reporter writing to w. When color is false, prefixes are
// rendered unstyled.
func New(w io.Writer, color bool) *Reporter {
	return &Reporter{
		w:      w,
		color:  color,
		styles: make(map[string]lipgloss.Style),
		now:    time.Now,
	}
}

// Report writes one status line for the given process id.
func (r *Reporter) Report(id, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(r.styleFor(id), id, message)
}

// System writes one status line attributed to the supervisor itself.
func (r *Reporter) System(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(systemStyle, "forerun", message)
}

// Systemf is System with fmt.Sprintf formatting.
func (r *Reporter) Systemf(format string, args ...any) {
	r.System(fmt.Sprintf(format, args...))
}

// write must be called with the mutex held.
func (r *Reporter) write(style lipgloss.Style, id, message string) {
	prefix := fmt.Sprintf("%s %-10s |", r.now().Format("15:04:05"), id)
	if r.color {
		prefix = style.Render(prefix)
	}
	fmt.Fprintf(r.w, "%s %s\n", prefix, message)
}

// styleFor must be called with the mutex held.
func (r *Reporter) styleFor(id string) lipgloss.Style {
	if s, ok := r.styles[id]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(palette[r.next%len(palette)])
	r.next++
	r.styles[id] = s
	return s
}

// Writer returns an io.Writer that reports each written line under the given
// process id. Used to stream child stdout/stderr through the reporter.
// Partial lines are buffered until a newline arrives.
func (r *Reporter) Writer(id string) io.Writer {
	return &lineWriter{reporter: r, id: id}
}

type lineWriter struct {
	mu       sync.Mutex
	reporter *Reporter
	id       string
	buf      []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.reporter.Report(w.id, string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}
