package emitter

import (
	"fmt"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// functionResumeCases collects, for every breakpoint instrumented while
// emitting one function, the dispatch fragment resuming it: one phrased
// against any matching entity (for debug:resume), one phrased against an
// already-selected @s (for debug:resume_self, invoked once a breakpoint
// entity has already been picked out).
type functionResumeCases struct {
	All  []string
	Self []string
}

// emitFunction produces the file set for one structurally valid source
// function: a "start"/"start_valid" entry pair, one command file per
// source line (its "position", addressable so a paused breakpoint can
// resume exactly there) plus that position's continue_at and
// continue_current_iteration_at targets, a "return_or_exit" tail, an
// "iterate_same_executor" driver for multi-entity call sites reaching this
// function, and a "scheduled" poll entry for a pending scheduled call.
// graph supplies each call site's resolved callee status, so a call to a
// missing or invalid function can be routed around instead of failing at
// runtime.
func emitFunction(base model.PlaceholderEnvironment, fn *model.SourceFunction, graph *model.CallGraph) ([]model.EmittedFile, functionResumeCases, error) {
	ns := base[template.PNamespace]
	env := functionEnv(base, fn)
	prefix := functionFilePath(ns, fn.OrigNS, fn.OrigPath, "")
	edges := calleeStatusByLine(graph, fn.FQName())

	var files []model.EmittedFile
	var cases functionResumeCases

	startText, err := template.Instantiate("start", startBody(env), env)
	if err != nil {
		return nil, cases, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"start"), startText))

	startValidText, err := template.Instantiate("start_valid", startValidBody(fn), env)
	if err != nil {
		return nil, cases, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"start_valid"), startValidText))

	if len(fn.Lines) == 0 {
		emptyText, err := template.Instantiate("position_1", "function -datapack-:-orig/fn-/return_or_exit\n", env)
		if err != nil {
			return nil, cases, err
		}
		files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"1"), emptyText))
	}

	for idx, line := range fn.Lines {
		posFiles, resumeCase, err := emitPosition(env, fn, line, idx, edges)
		if err != nil {
			return nil, cases, err
		}
		files = append(files, posFiles...)
		if resumeCase != nil {
			cases.All = append(cases.All, resumeCase.All...)
			cases.Self = append(cases.Self, resumeCase.Self...)
		}
	}

	tail, err := template.Instantiate("return_or_exit", returnOrExitBody(), env)
	if err != nil {
		return nil, cases, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"return_or_exit"), tail))

	iterateText, err := template.Instantiate("iterate_same_executor", iterateSameExecutorBody(), env)
	if err != nil {
		return nil, cases, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"iterate_same_executor"), iterateText))

	scheduledText, err := template.Instantiate("scheduled", scheduledBody(), env)
	if err != nil {
		return nil, cases, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, prefix+"scheduled"), scheduledText))

	return files, cases, nil
}

// calleeStatusByLine indexes a call graph's outgoing edges for one caller
// by source line, so a call site's own resolved status is a map lookup
// rather than a linear scan per line.
func calleeStatusByLine(graph *model.CallGraph, caller string) map[int]model.CallEdge {
	out := make(map[int]model.CallEdge)
	for _, e := range graph.Callees(caller) {
		out[e.Line] = e
	}
	return out
}

// startBody dispatches into start_valid after marking this function's own
// validity flag. Split from start_valid so a future caller can re-enter
// past the flag write (e.g. a scheduled re-invocation that already knows
// the function is valid) without re-running it.
func startBody(env model.PlaceholderEnvironment) string {
	return "scoreboard players set " + env[template.PFnScoreHolder] + " -ns-_valid 1\n" +
		"function -datapack-:-orig/fn-/start_valid\n"
}

// startValidBody dispatches into the first line's position file; for an
// empty function that is position 1, whose only command calls
// return_or_exit.
func startValidBody(fn *model.SourceFunction) string {
	if len(fn.Lines) == 0 {
		return "function -datapack-:-orig/fn-/1\n"
	}
	return fmt.Sprintf("function -datapack-:-orig/fn-/%d\n", fn.Lines[0].Number)
}

// returnOrExitBody runs once a function's last position has executed. Its
// only command returns early when no context entity exists; it does not
// remove a context entity, enter a caller's continue_at file, or end the
// session.
func returnOrExitBody() string {
	return `execute unless entity @e[tag=-ns-_context,limit=1,sort=nearest] run return 0
`
}

// iterateSameExecutorBody re-enters this function's start for every entity
// still carrying its context tag -- the driver a multi-selector call site
// dispatches into once its own body has run, so a context marker summoned
// per matched entity gets its own independent pass through the callee
// instead of only the first one reached.
func iterateSameExecutorBody() string {
	return `execute as @e[tag=-ns-_context,tag=-orig+fn-] at @s run function -datapack-:-orig/fn-/start
`
}

// scheduledBody is the poll entry a pending "schedule function" marker
// re-enters every tick: start the call once the session is not suspended,
// otherwise wait one more tick before checking again.
func scheduledBody() string {
	return `execute unless score $-ns- -ns-_global matches 1 run function -datapack-:-orig/fn-/start
execute if score $-ns- -ns-_global matches 1 run schedule function -datapack-:-orig/fn-/scheduled 1t
`
}

// nextTarget is the position this line hands control to once it finishes:
// the next source line's number, or "return_or_exit" past the last one.
func nextTarget(fn *model.SourceFunction, idx int) string {
	if idx+1 < len(fn.Lines) {
		return fmt.Sprintf("%d", fn.Lines[idx+1].Number)
	}
	return "return_or_exit"
}

// emitPosition renders one source line's command file together with its
// continue_at_<N> (restores the resume context entity, then jumps to
// target -- used both by a real nested call returning and by a resumed
// breakpoint) and continue_current_iteration_at_<target> (jumps straight
// to target with no restore -- the skipped-callee path, since nothing
// about the executor's context ever changed) files. resumeCase is non-nil
// only for a breakpoint line.
func emitPosition(env model.PlaceholderEnvironment, fn *model.SourceFunction, line model.SourceLine, idx int, edges map[int]model.CallEdge) ([]model.EmittedFile, *functionResumeCases, error) {
	ns := env[template.PNamespace]
	prefix := functionFilePath(ns, fn.OrigNS, fn.OrigPath, "")
	target := nextTarget(fn, idx)

	lineEnv := env.With(template.PLineNumber, fmt.Sprintf("%d", line.Number)).
		With(template.PPosition, fmt.Sprintf("%d", line.Number))

	body, advance, resumeCase, err := renderLine(lineEnv, fn, line, edges, target)
	if err != nil {
		return nil, nil, err
	}

	var files []model.EmittedFile
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, fmt.Sprintf("%s%d", prefix, line.Number)), body+advance))

	continueEnv := lineEnv.With(template.PPosition, target)
	continueAtText, err := template.Instantiate(string(template.NameReturnSelf), template.Library[template.NameReturnSelf], continueEnv)
	if err != nil {
		return nil, nil, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, fmt.Sprintf("%scontinue_at_%d", prefix, line.Number)), continueAtText))

	continueIterText, err := template.Instantiate(string(template.NameContinueCurrentIteration), template.Library[template.NameContinueCurrentIteration], continueEnv)
	if err != nil {
		return nil, nil, err
	}
	files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, fmt.Sprintf("%scontinue_current_iteration_at_%s", prefix, target)), continueIterText))

	return files, resumeCase, nil
}

// renderLine dispatches on the line's tagged kind, the parser's "switch
// over Kind, never polymorphism" design carried through to the emitter.
// advance is the auto-advance to target appended after body for every kind
// except a breakpoint (which must suspend, not advance) and a call to a
// missing/invalid callee (whose own body already reaches target via
// continue_current_iteration_at, so appending a second advance would run
// target twice).
func renderLine(env model.PlaceholderEnvironment, fn *model.SourceFunction, line model.SourceLine, edges map[int]model.CallEdge, target string) (body, advance string, resumeCase *functionResumeCases, err error) {
	if line.InvalidReason != "" {
		adv, aerr := advanceTo(env, target)
		return renderInvalidLine(env, line), adv, nil, aerr
	}

	inner, chain := line.Parsed.Flatten()
	prefix := ""
	if len(chain) > 0 {
		prefix = "execute " + chain.Raw() + " run "
	}

	switch inner.Kind {
	case model.LineBreakpoint:
		body, err = renderBreakpoint(env, fn, line)
		if err != nil {
			return "", "", nil, err
		}
		return body, "", breakpointResumeCase(env, fn, line), nil
	case model.LineFunctionCall:
		if edge, ok := edges[line.Number]; ok && edge.Status != model.CalleePresent {
			body, err = renderSkippedCall(env, prefix, inner.Call.Callee, edge.Status, target)
			return body, "", nil, err
		}
		body, err = renderCall(env, prefix, inner.Call.Callee, needsContextEntity(chain))
		if err != nil {
			return "", "", nil, err
		}
		adv, aerr := advanceTo(env, target)
		return body, adv, nil, aerr
	case model.LineSchedule:
		body, err = renderSchedule(env, prefix, inner.Schedule)
		if err != nil {
			return "", "", nil, err
		}
		adv, aerr := advanceTo(env, target)
		return body, adv, nil, aerr
	default:
		if inner.Kind == model.LineOpaque {
			op := inner.Opaque
			if prefix != "" {
				op = &model.OpaqueLine{Raw: prefix + op.Raw, NeedsContextRestore: op.NeedsContextRestore}
			}
			body = renderOpaque(env, op)
		} else {
			body = renderOpaque(env, &model.OpaqueLine{Raw: line.Raw})
		}
		adv, aerr := advanceTo(env, target)
		return body, adv, nil, aerr
	}
}

// advanceTo renders the unconditional jump to target appended after a line
// that does not itself suspend or redirect control.
func advanceTo(env model.PlaceholderEnvironment, target string) (string, error) {
	raw := fmt.Sprintf("function -datapack-:-orig/fn-/%s\n", target)
	return template.Instantiate("position_advance", raw, env)
}

// breakpointResumeCase builds the two dispatch fragments debug:resume and
// debug:resume_self bind into -resume_cases- for this breakpoint: jump to
// the continue_at file for the line the breakpoint suspended at, so
// resuming restores the context entity before continuing past it.
func breakpointResumeCase(env model.PlaceholderEnvironment, fn *model.SourceFunction, line model.SourceLine) *functionResumeCases {
	ns := env[template.PNamespace]
	anchor := breakpointAnchorTag(ns, fn, line)
	target := fmt.Sprintf("%s:%scontinue_at_%d", env[template.PDatapack], functionFilePath(ns, fn.OrigNS, fn.OrigPath, ""), line.Number)
	return &functionResumeCases{
		All:  []string{fmt.Sprintf("execute as @e[tag=%s_breakpoint,tag=%s_active,tag=%s] run function %s\n", ns, ns, anchor, target)},
		Self: []string{fmt.Sprintf("execute if entity @s[tag=%s] run function %s\n", anchor, target)},
	}
}

func renderInvalidLine(env model.PlaceholderEnvironment, line model.SourceLine) string {
	return fmt.Sprintf("# invalid command: %s\n", line.InvalidReason)
}

// renderOpaque emits a line the parser did not need to understand
// structurally close to verbatim. A line whose meaning depends on the
// executor's identity or position (@s, ~, ^, a nearest-sort selector) is
// re-run through the context entity instead of directly, since suspending
// at an earlier breakpoint may have displaced the real executor.
func renderOpaque(env model.PlaceholderEnvironment, op *model.OpaqueLine) string {
	if !op.NeedsContextRestore {
		return op.Raw + "\n"
	}
	env = env.With(template.PMinectLog, op.Raw)
	body, _ := template.Instantiate("opaque_restore", opaqueRestoreBody(), env)
	return body
}

func opaqueRestoreBody() string {
	return `execute as @e[tag=-ns-_context,limit=1,sort=nearest] at @s run -minect_log-
`
}

// renderCall instruments a plain function call, tracking call depth around
// it so a paused breakpoint deeper in the call tree can report how it got
// there. multiSelector is true when the "as" clause that reaches this call
// can match more than one entity, which needs its own per-entity context
// marker rather than a plain prefix.
func renderCall(env model.PlaceholderEnvironment, prefix, callee string, multiSelector bool) (string, error) {
	callNS, callPath, ok := splitFQName(callee)
	if !ok {
		return "", &diagnostics.InvalidCommand{Reason_: "malformed callee " + callee}
	}
	env = calleeEnv(env, env[template.PNamespace], callNS, callPath)
	body, err := template.Instantiate(string(template.NameCallFunction), template.Library[template.NameCallFunction], env)
	if err != nil {
		return "", err
	}

	if multiSelector {
		return wrapMultiSelectorCall(env, prefix, body)
	}
	if prefix == "" {
		return body, nil
	}
	return prefix + body, nil
}

// renderSkippedCall instruments a call to a callee the call graph could
// not resolve to a present, valid function: rather than emit a call that
// would fail at runtime, record which counter (missing vs. invalid) to
// bump on the shared global objective and jump straight past the dead
// call site, skipping it entirely for this iteration.
func renderSkippedCall(env model.PlaceholderEnvironment, prefix, callee string, status model.CalleeStatus, target string) (string, error) {
	callNS, callPath, ok := splitFQName(callee)
	if !ok {
		return "", &diagnostics.InvalidCommand{Reason_: "malformed callee " + callee}
	}
	holder := scoreHolder(env[template.PNamespace], callNS, callPath)
	counter := "skipped_missing"
	if status == model.CalleeInvalid {
		counter = "skipped_invalid"
	}

	checkRaw := fmt.Sprintf("execute unless score %s -ns-_valid matches 1 run scoreboard players add %s -ns-_global 1\n", holder, counter)
	check, err := template.Instantiate("skipped_call_check", checkRaw, env)
	if err != nil {
		return "", err
	}
	if prefix != "" {
		check = prefix + check
	}

	advanceRaw := fmt.Sprintf("function -datapack-:-orig/fn-/continue_current_iteration_at_%s\n", target)
	advance, err := template.Instantiate("skipped_call_advance", advanceRaw, env)
	if err != nil {
		return "", err
	}

	return check + advance, nil
}

func splitFQName(fq string) (ns, path string, ok bool) {
	for i := 0; i < len(fq); i++ {
		if fq[i] == ':' {
			return fq[:i], fq[i+1:], true
		}
	}
	return "", "", false
}
