package emitter

import (
	"fmt"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// renderBreakpoint instruments a "# breakpoint" source line: suspend by
// summoning a marker entity tagged uniquely to this call site and source
// position -- the tag debug:resume's resume_cases dispatch on -- carrying
// a custom name that round-trips the exact source location, report the
// suspension, and warn if this function's own structural validity is in
// question (a breakpoint downstream of an invalid function is still
// reachable, but the debugger could not fully reason about how execution
// got here).
func renderBreakpoint(env model.PlaceholderEnvironment, fn *model.SourceFunction, line model.SourceLine) (string, error) {
	anchor := template.EncodeTag(env[template.PNamespace], fn.OrigNS, fn.OrigPath, fmt.Sprintf("%d", line.Number))
	customName := fmt.Sprintf("%s:%d", fn.FQName(), line.Number)
	env = env.Merge(model.PlaceholderEnvironment{
		template.PDebugAnchor: anchor,
		template.PMinectLog:   fmt.Sprintf(`[{"text":"paused at %s:%d"}]`, fn.FQName(), line.Number),
		template.PMinectLogCond: fmt.Sprintf(`[{"text":"%s could not be fully instrumented; step behavior past this point is best-effort"}]`,
			fn.FQName()),
	})
	raw := fmt.Sprintf(template.Library[template.NameSetBreakpoint], customName)
	return template.Instantiate(string(template.NameSetBreakpoint), raw, env)
}

// breakpointAnchorTag returns the entity tag a breakpoint at line in fn
// resumes against -- the same value renderBreakpoint binds onto the
// summoned marker, computed independently here so the global resume
// dispatch can reference a call site's tag without re-rendering it.
func breakpointAnchorTag(ns string, fn *model.SourceFunction, line model.SourceLine) string {
	return template.EncodeTag(ns, fn.OrigNS, fn.OrigPath, fmt.Sprintf("%d", line.Number))
}
