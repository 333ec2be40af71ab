// Package model holds the immutable data shapes the compiler passes between
// stages: the source datapack as loaded from disk, the parsed form of each
// source line, and the file set the emitter produces. Nothing in this
// package performs I/O or mutates a value after construction.
package model

import "fmt"

// RootNamespace is the fixed namespace the compiler emits its dispatcher
// and session-control files under.
const RootNamespace = "debug"

// DefaultInternalNamespace is used when --namespace is not given.
const DefaultInternalNamespace = "mcfd"

// SourceDatapack is an immutable mapping from fully-qualified function name
// ("namespace:path/to/fn") to its parsed source.
type SourceDatapack struct {
	// Namespace is the internal namespace (ns) generated files live under.
	Namespace string
	Functions map[string]*SourceFunction
}

// NewSourceDatapack creates an empty datapack for the given internal
// namespace.
func NewSourceDatapack(namespace string) *SourceDatapack {
	return &SourceDatapack{
		Namespace: namespace,
		Functions: make(map[string]*SourceFunction),
	}
}

// Lookup returns the function by fully-qualified name, and whether it exists.
func (d *SourceDatapack) Lookup(fqName string) (*SourceFunction, bool) {
	fn, ok := d.Functions[fqName]
	return fn, ok
}

// Names returns every fully-qualified function name, in Go map iteration
// order; the order is not defined and the datapack does not record
// declaration order.
func (d *SourceDatapack) Names() []string {
	names := make([]string, 0, len(d.Functions))
	for name := range d.Functions {
		names = append(names, name)
	}
	return names
}

// SourceFunction is one input .mcfunction file: an origin namespace/path
// pair and its ordered source lines.
type SourceFunction struct {
	OrigNS   string
	OrigPath string // relative path under data/<ns>/functions, no extension
	Lines    []SourceLine

	// Valid is computed once during parsing: false iff any line failed to
	// classify (an InvalidCommand). Parsing still continues past the
	// failure so a stub can be emitted for this function.
	Valid bool
}

// FQName returns "orig_ns:orig_path".
func (f *SourceFunction) FQName() string {
	return fmt.Sprintf("%s:%s", f.OrigNS, f.OrigPath)
}

// SourceLine is one physical line of a SourceFunction, 1-based.
type SourceLine struct {
	Number int
	Raw    string
	Parsed ParsedLine

	// InvalidReason is non-empty iff this line failed to parse as a command
	// the debugger needs to understand. Parsed still holds a best-effort
	// Opaque fallback built from Raw so downstream stages have something to
	// emit verbatim.
	InvalidReason string
	InvalidColumn string // byte-range text for diagnostics, "" if unknown
}
