package emitter

import (
	"fmt"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// emitDispatch writes the breakpoint-gated dispatcher under data/debug/...
// that a call reached during a suspended session is refused rather than
// silently reentered: if this namespace's session is currently suspended
// (any breakpoint marker active) the call reports that and does nothing,
// otherwise it forwards into the instrumented start file. Namespace
// discipline (spec's generated-path invariant) confines every emitted path
// to the internal namespace, debug, minecraft/tags, or -- only with
// --shadow -- the function's own original namespace; there is no
// "<ns>_shadow" namespace.
//
// Without shadow, the original data/<orig_ns>/... path is left out of the
// output entirely: the debug: dispatcher is the only entry point, and
// nothing under the original namespace is written. With shadow, a one-line
// trampoline is written back under the function's own original path,
// forwarding into the debug: dispatcher so existing call sites under
// orig_ns keep working unchanged.
func emitDispatch(ns string, fn *model.SourceFunction, shadow bool) []model.EmittedFile {
	debugPath := template.EncodePath(fn.OrigNS, fn.OrigPath)
	startPath := functionFilePath(ns, fn.OrigNS, fn.OrigPath, "start")

	env := model.PlaceholderEnvironment{
		template.PNamespace: ns,
		template.PMinectLog: fmt.Sprintf(`[{"text":"%s:%s cannot start, session suspended"}]`, fn.OrigNS, fn.OrigPath),
	}
	raw := fmt.Sprintf(`execute if score $-ns- -ns-_global matches 1 run tellraw @a -minect_log-
execute unless score $-ns- -ns-_global matches 1 run function %s:%s
`, model.RootNamespace, startPath)
	body, err := template.Instantiate("dispatch", raw, env)
	if err != nil {
		body = raw
	}
	dispatchFile := model.NewEmittedFile(diskPath(model.RootNamespace, debugPath), body)
	if !shadow {
		return []model.EmittedFile{dispatchFile}
	}

	forward := fmt.Sprintf("function %s:%s\n", model.RootNamespace, debugPath)
	shadowFile := model.NewEmittedFile(diskPath(fn.OrigNS, fn.OrigPath), forward)

	return []model.EmittedFile{dispatchFile, shadowFile}
}

// emitInvalidStub replaces an invalid source function's body with a
// warning instead of silently dropping it: the original call sites still
// resolve to *something* rather than a missing-function error from the
// game itself.
func emitInvalidStub(ns string, fn *model.SourceFunction) model.EmittedFile {
	env := model.PlaceholderEnvironment{
		template.PNamespace: ns,
		template.PReason:    "contains a command the debugger could not classify",
		template.PMinectLog: fmt.Sprintf(`[{"text":"%s was not instrumented: contains a command the debugger could not classify"}]`, fn.FQName()),
	}
	body, _ := template.Instantiate(string(template.NameSkippedFunctionsWarning), template.Library[template.NameSkippedFunctionsWarning], env)
	return model.NewEmittedFile(diskPath(model.RootNamespace, template.EncodePath(fn.OrigNS, fn.OrigPath)), body)
}
