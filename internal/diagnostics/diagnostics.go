// Package diagnostics implements the error taxonomy of the compiler's
// error-handling design: six closed error kinds, one rendering format
// ("<file>:<line>: <kind>: <message>"), and a collector for the one kind
// (InvalidCommand) that accumulates instead of aborting the run.
package diagnostics

import "fmt"

// Diagnostic is the common surface every taxonomy member implements, on
// top of the standard error interface, so a single Render function can
// format any of them the same way.
type Diagnostic interface {
	error
	File() string
	Line() int    // 0 when not line-specific
	Kind() string // "InvalidInput", "InvalidCommand", ...
	Reason() string
}

// Render formats a Diagnostic as "<file>:<line>: <kind>: <message>", or
// "<file>: <kind>: <message>" when the diagnostic has no line number, per
// the single-line-per-issue, no-stack-traces output contract.
func Render(d Diagnostic) string {
	if d.Line() > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", d.File(), d.Line(), d.Kind(), d.Reason())
	}
	return fmt.Sprintf("%s: %s: %s", d.File(), d.Kind(), d.Reason())
}

// InvalidInput: missing pack.mcmeta, not a directory, or an unreadable
// file. Aborts the run.
type InvalidInput struct {
	Path    string
	Reason_ string
}

func (e *InvalidInput) Error() string  { return Render(e) }
func (e *InvalidInput) File() string   { return e.Path }
func (e *InvalidInput) Line() int      { return 0 }
func (e *InvalidInput) Kind() string   { return "InvalidInput" }
func (e *InvalidInput) Reason() string { return e.Reason_ }

// InvalidCommand: the parser could not classify a line the debugger needs
// to understand. Does not abort; accumulates into Collector and the
// function's Valid flag is cleared.
type InvalidCommand struct {
	FileName  string
	LineNo    int
	ByteRange string // textual byte-range, e.g. "12-19", "" if unknown
	Reason_   string
}

func (e *InvalidCommand) Error() string  { return Render(e) }
func (e *InvalidCommand) File() string   { return e.FileName }
func (e *InvalidCommand) Line() int      { return e.LineNo }
func (e *InvalidCommand) Kind() string   { return "InvalidCommand" }
func (e *InvalidCommand) Reason() string { return e.Reason_ }

// DuplicateOutput: two source functions collide on output path after
// internal path-encoding. Aborts the run.
type DuplicateOutput struct {
	Path    string
	Sources [2]string
}

func (e *DuplicateOutput) Error() string { return Render(e) }
func (e *DuplicateOutput) File() string  { return e.Path }
func (e *DuplicateOutput) Line() int     { return 0 }
func (e *DuplicateOutput) Kind() string  { return "DuplicateOutput" }
func (e *DuplicateOutput) Reason() string {
	return fmt.Sprintf("output path %q claimed by both %q and %q", e.Path, e.Sources[0], e.Sources[1])
}

// UnboundPlaceholder: a template was instantiated with a placeholder the
// environment did not supply a value for. Always a compiler bug; aborts
// the run.
type UnboundPlaceholder struct {
	Template    string
	Placeholder string
}

func (e *UnboundPlaceholder) Error() string  { return Render(e) }
func (e *UnboundPlaceholder) File() string   { return e.Template }
func (e *UnboundPlaceholder) Line() int      { return 0 }
func (e *UnboundPlaceholder) Kind() string   { return "UnboundPlaceholder" }
func (e *UnboundPlaceholder) Reason() string {
	return fmt.Sprintf("unbound placeholder %q", e.Placeholder)
}

// OutputWriteFailure: a filesystem error from the output writer. Aborts
// the run.
type OutputWriteFailure struct {
	Path  string
	Cause error
}

func (e *OutputWriteFailure) Error() string  { return Render(e) }
func (e *OutputWriteFailure) File() string   { return e.Path }
func (e *OutputWriteFailure) Line() int      { return 0 }
func (e *OutputWriteFailure) Kind() string   { return "OutputWriteFailure" }
func (e *OutputWriteFailure) Reason() string { return e.Cause.Error() }
func (e *OutputWriteFailure) Unwrap() error  { return e.Cause }

// ConfigError: the internal namespace is too long or uses an illegal
// character set. Aborts the run.
type ConfigError struct {
	Field   string
	Reason_ string
}

func (e *ConfigError) Error() string  { return Render(e) }
func (e *ConfigError) File() string   { return e.Field }
func (e *ConfigError) Line() int      { return 0 }
func (e *ConfigError) Kind() string   { return "ConfigError" }
func (e *ConfigError) Reason() string { return e.Reason_ }
