package diag

import "sort"

// Severity orders diagnostics from least to most severe. spec.md §4.9
// writes the lattice most-severe-first ("Bug < Error < Warning < Note <
// Help"); Severity's int values increase with severity so that the common
// check "severity >= Error" reads naturally.
type Severity int

const (
	Help Severity = iota
	Note
	Warning
	Error
	Bug
)

func (s Severity) String() string {
	switch s {
	case Help:
		return "help"
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Bug:
		return "bug"
	default:
		return "unknown"
	}
}

// Span addresses a byte range in a named source (spec.md §6.4: spans
// reference the runefile text or a model/proc-block path fragment).
type Span struct {
	File  string
	Start int
	End   int
}

// NoteMessage is a secondary message attached to a Diagnostic, optionally
// pointing at its own span.
type NoteMessage struct {
	Message string
	Span    *Span
}

// Diagnostic is a single compiler report.
type Diagnostic struct {
	Severity Severity
	Message  string
	Primary  Span
	Notes    []NoteMessage
}

// New builds a Diagnostic with no notes.
func New(severity Severity, message string, primary Span) Diagnostic {
	return Diagnostic{Severity: severity, Message: message, Primary: primary}
}

// WithNote appends a note and returns the Diagnostic for chaining.
func (d Diagnostic) WithNote(message string, span *Span) Diagnostic {
	d.Notes = append(d.Notes, NoteMessage{Message: message, Span: span})
	return d
}

// Collection is an append-only set of diagnostics, queryable by severity.
type Collection struct {
	diags []Diagnostic
}

// Push records a diagnostic.
func (c *Collection) Push(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// Len returns the number of recorded diagnostics.
func (c *Collection) Len() int {
	return len(c.diags)
}

// All returns every recorded diagnostic, in the order they were pushed.
func (c *Collection) All() []Diagnostic {
	return append([]Diagnostic(nil), c.diags...)
}

// BySeverity returns every diagnostic with exactly the given severity, in
// the order they were pushed.
func (c *Collection) BySeverity(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diags {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// AtLeast returns every diagnostic at or above the given severity.
func (c *Collection) AtLeast(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diags {
		if d.Severity >= s {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic has severity Error or worse
// (spec.md §3: "Severity ≥ Error causes compilation to fail").
func (c *Collection) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

// SortBySeverity returns a copy of the diagnostics sorted from most to
// least severe, preserving push order among equal severities. Rendering is
// the caller's responsibility (spec.md §6.4); this is a convenience used by
// callers that want the worst problems surfaced first.
func (c *Collection) SortBySeverity() []Diagnostic {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity > out[j].Severity
	})
	return out
}
