// Package parser implements the command parser of §4.1: given one physical
// source line, produce one model.ParsedLine, or fail with a *ParseError
// describing why the line could not be classified. Only the subset of
// command grammar needed to reason about control flow is parsed in full
// (the execute modifier chain, function, schedule, and the breakpoint
// comment marker); everything else is retained as Opaque raw text.
package parser

import (
	"strings"

	"github.com/go-mcfd/mcfd/internal/model"
)

const breakpointText = "# breakpoint"

// ParseLine classifies one physical source line (already stripped of its
// trailing newline). On failure it still returns a best-effort Opaque
// ParsedLine built from the raw text, so the caller can mark the owning
// function invalid while still having something to emit for that line.
func ParseLine(raw string) (model.ParsedLine, *ParseError) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == breakpointText {
		return model.Breakpoint(), nil
	}

	if strings.HasPrefix(trimmed, "#") {
		// Any other '#'-prefixed line is an ordinary opaque comment, never
		// a parse failure.
		return opaqueLine(raw), nil
	}

	if trimmed == "" {
		return opaqueLine(raw), nil
	}

	tokens := tokenize(trimmed)
	if len(tokens) == 0 {
		return opaqueLine(raw), nil
	}

	switch tokens[0] {
	case "function":
		if callee, ok := parseFunctionCall(tokens); ok {
			return model.ParsedLine{Kind: model.LineFunctionCall, Call: &model.FunctionCall{Callee: callee}}, nil
		}
		return opaqueLine(raw), &ParseError{Reason: "malformed function call: expected \"function <ns>:<path>\""}

	case "schedule":
		if sched, ok := parseSchedule(tokens); ok {
			return model.ParsedLine{Kind: model.LineSchedule, Schedule: sched}, nil
		}
		return opaqueLine(raw), &ParseError{Reason: "malformed schedule command"}

	case "execute":
		return parseExecuteLine(raw, tokens[1:])
	}

	return opaqueLine(raw), nil
}

// parseExecuteLine decomposes "execute <modifiers...> run <inner>" into a
// model.ExecuteRun, recursively parsing the inner command. When the chain
// never reaches "run" (a conditional-only execute with no attached
// command, or a malformed chain), the whole line falls back to Opaque --
// it carries no control-flow the debugger needs to follow.
func parseExecuteLine(raw string, rest []string) (model.ParsedLine, *ParseError) {
	chain, runIdx := parseModifierChain(rest)
	if runIdx < 0 {
		return opaqueLine(raw), nil
	}

	innerTokens := rest[runIdx+1:]
	if len(innerTokens) == 0 {
		return opaqueLine(raw), &ParseError{Reason: "execute ... run with no following command"}
	}

	innerRaw := strings.Join(innerTokens, " ")
	inner, perr := ParseLine(innerRaw)
	if perr != nil {
		return opaqueLine(raw), perr
	}

	// Only the full recursive node is built here, so deeper nesting
	// ("execute ... run execute ... run function ...") is representable;
	// ParsedLine.Flatten derives the flattened view (innermost command plus
	// the combined chain) on demand.
	parsed := model.ParsedLine{
		Kind: model.LineExecuteRun,
		Execute: &model.ExecuteRun{
			Modifiers: chain,
			Inner:     &inner,
		},
	}
	return parsed, perr
}

func opaqueLine(raw string) model.ParsedLine {
	return model.ParsedLine{
		Kind: model.LineOpaque,
		Opaque: &model.OpaqueLine{
			Raw:                 raw,
			NeedsContextRestore: needsContextRestore(raw),
		},
	}
}
