package schema

import "fmt"

// Error reports a malformed or structurally invalid template. Inference
// aborts on the first one found; no partial schema is produced.
type Error struct {
	// Path is the dotted path to the offending node, when determinable.
	Path string
	// Line is the source line of the offending node, when determinable.
	Line int
	// Reason describes what was wrong.
	Reason string
}

func (e *Error) Error() string {
	msg := "schema: " + e.Reason
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg
}

func schemaErrorf(path string, line int, format string, args ...any) *Error {
	return &Error{Path: path, Line: line, Reason: fmt.Sprintf(format, args...)}
}
