package config

import (
	"regexp"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
)

// namespacePattern mirrors the game's own resource-location character
// set: lowercase letters, digits, underscore, dot, hyphen.
var namespacePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)

const maxNamespaceLength = 7

// Validate checks the fields the compiler cannot recover from at any
// later stage: an internal namespace that is too long to leave headroom
// for the longest generated suffix inside a 16-character tag, or one
// that uses characters the game's own resource-location grammar forbids.
func Validate(opts Options) error {
	if opts.Input == "" {
		return &diagnostics.ConfigError{Field: "input", Reason_: "required"}
	}
	if opts.Output == "" {
		return &diagnostics.ConfigError{Field: "output", Reason_: "required"}
	}
	if len(opts.Namespace) > maxNamespaceLength {
		return &diagnostics.ConfigError{
			Field:   "namespace",
			Reason_: "must be at most 7 characters",
		}
	}
	if !namespacePattern.MatchString(opts.Namespace) {
		return &diagnostics.ConfigError{
			Field:   "namespace",
			Reason_: "must match [a-z0-9_.-]+",
		}
	}
	switch opts.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return &diagnostics.ConfigError{Field: "log-level", Reason_: "must be one of trace, debug, info, warn, error"}
	}
	return nil
}
