// Package emitter turns a parsed, call-graph-classified SourceDatapack into
// the file set of a debug datapack: one instrumented command file per
// source line (so a suspended breakpoint has somewhere to resume into), a
// handful of fixed datapack-wide control files, and a per-function
// dispatcher under the debug namespace that forwards into its instrumented
// counterpart (plus, only with shadow, a forwarding stub at the original
// function's own path).
package emitter

import (
	"fmt"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// baseEnv returns the placeholder bindings shared by every template
// instantiation for one compilation: the internal namespace and the
// output datapack's own namespace (used to address files across
// namespaces, e.g. "function debug:mcfd/...").
func baseEnv(ns string) model.PlaceholderEnvironment {
	return model.PlaceholderEnvironment{
		template.PNamespace: ns,
		template.PDatapack:  model.RootNamespace,
	}
}

// functionEnv extends base with the placeholders identifying one source
// function: its origin namespace/path (both encodings) and the constant
// scoreboard holder used to test/record its own structural validity.
func functionEnv(base model.PlaceholderEnvironment, fn *model.SourceFunction) model.PlaceholderEnvironment {
	ns := base[template.PNamespace]
	return base.Merge(model.PlaceholderEnvironment{
		template.POrigNS:        fn.OrigNS,
		template.POrigFnPath:    template.EncodePath(ns, fn.OrigNS, fn.OrigPath),
		template.POrigFnTag:     template.EncodeTag(ns, fn.OrigNS, fn.OrigPath),
		template.PFnScoreHolder: scoreHolder(ns, fn.OrigNS, fn.OrigPath),
	})
}

// calleeEnv adds the placeholders for a call site's target function.
func calleeEnv(env model.PlaceholderEnvironment, ns, origNS, origPath string) model.PlaceholderEnvironment {
	return env.Merge(model.PlaceholderEnvironment{
		template.PCallNS:     origNS,
		template.PCallFnPath: template.EncodePath(ns, origNS, origPath),
		template.PCallFnTag:  template.EncodeTag(ns, origNS, origPath),
	})
}

// scoreHolder names the fixed fake-player holder a function's own
// structural-validity flag is recorded on: one per function, stable across
// runs since it is derived only from names already in the source tree.
func scoreHolder(ns, origNS, origPath string) string {
	return "$" + template.EncodeTag(ns, origNS, origPath)
}

// functionFilePath is the slash-separated resource path (without namespace) of a
// generated file belonging to one source function, e.g.
// "mcfd/foo/bar/start" or "mcfd/foo/bar/3".
func functionFilePath(ns, origNS, origPath, leaf string) string {
	return template.EncodePath(ns, origNS, origPath) + "/" + leaf
}

// diskPath maps a namespace:resource-path pair to the on-disk location of
// its .mcfunction file.
func diskPath(namespace, resourcePath string) string {
	return fmt.Sprintf("data/%s/functions/%s.mcfunction", namespace, resourcePath)
}
