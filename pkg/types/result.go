package types

// Status is the capability of the typesetting library as seen by a check
type Status string

const (
	// StatusReady means the library loaded and rendered the sample expression
	StatusReady Status = "ready"
	// StatusUnavailable means the library could not be located or loaded
	StatusUnavailable Status = "unavailable"
	// StatusDegraded means the library loaded but the render check failed
	StatusDegraded Status = "degraded"
)

// Stream selects where a line is written
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

// LineKind drives the styling of a line
type LineKind string

const (
	LineSuccess LineKind = "Success"
	LineFailure LineKind = "Error"
	LineHint    LineKind = "Hint"
)

// Line is one console message produced by a check
type Line struct {
	Stream Stream
	Kind   LineKind
	Text   string
}

// CheckResult is the outcome of one installation check. Lines are kept in
// emission order.
type CheckResult struct {
	Status Status
	Reason error
	Lines  []Line
}

// OK reports whether the library is ready for use
func (r CheckResult) OK() bool {
	return r.Status == StatusReady
}

// LinesOf returns the text of all lines of the given kind
func (r CheckResult) LinesOf(kind LineKind) []string {
	var out []string
	for _, l := range r.Lines {
		if l.Kind == kind {
			out = append(out, l.Text)
		}
	}
	return out
}
