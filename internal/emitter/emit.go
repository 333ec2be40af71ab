package emitter

import (
	"sort"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
)

// Emit compiles dp (already call-graph-classified by internal/callgraph)
// into the full output file set of a debug datapack. File order in the
// returned slice is deterministic: global files first, then functions in
// sorted name order, each function's own files in source order -- nothing
// here depends on Go map iteration order.
//
// Parse failures recorded on individual lines already kept their owning
// function's Valid flag false; such a function gets a stub rather than
// being silently dropped, and each of its failed lines is reported in the
// returned Collector. A valid function that calls a missing or invalid
// callee is instrumented normally, with that call site skipped and counted
// at runtime; it is not reported in the Collector.
func Emit(dp *model.SourceDatapack, graph *model.CallGraph, shadow, adapter bool) ([]model.EmittedFile, *diagnostics.Collector, error) {
	ns := dp.Namespace
	base := baseEnv(ns)
	collector := diagnostics.NewCollector()

	names := sortedNames(dp)
	missing := missingCallees(graph, names)

	var invalidNames []string
	var funcFiles []model.EmittedFile
	var cases functionResumeCases

	for _, name := range names {
		fn := dp.Functions[name]
		if !fn.Valid {
			invalidNames = append(invalidNames, name)
			funcFiles = append(funcFiles, emitInvalidStub(ns, fn))
			for _, line := range fn.Lines {
				if line.InvalidReason != "" {
					collector.Add(&diagnostics.InvalidCommand{
						FileName:  fn.FQName(),
						LineNo:    line.Number,
						ByteRange: line.InvalidColumn,
						Reason_:   line.InvalidReason,
					})
				}
			}
			continue
		}

		fnFiles, fnCases, err := emitFunction(base, fn, graph)
		if err != nil {
			return nil, nil, err
		}
		funcFiles = append(funcFiles, fnFiles...)
		funcFiles = append(funcFiles, emitDispatch(ns, fn, shadow)...)
		cases.All = append(cases.All, fnCases.All...)
		cases.Self = append(cases.Self, fnCases.Self...)
	}

	globalFiles, err := emitGlobalFiles(base, missing, invalidNames, cases, adapter)
	if err != nil {
		return nil, nil, err
	}

	var files []model.EmittedFile
	files = append(files, globalFiles...)
	files = append(files, funcFiles...)

	if err := checkDuplicates(files); err != nil {
		return nil, nil, err
	}

	return files, collector, nil
}

func sortedNames(dp *model.SourceDatapack) []string {
	names := dp.Names()
	sort.Strings(names)
	return names
}

// missingCallees collects, in deterministic order, every callee name the
// call graph could not resolve to a defined function -- the set reported
// in the session summary's "these calls go nowhere" warning.
func missingCallees(graph *model.CallGraph, callers []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, caller := range callers {
		for _, edge := range graph.Callees(caller) {
			if edge.Status != model.CalleeMissing {
				continue
			}
			if seen[edge.Callee] {
				continue
			}
			seen[edge.Callee] = true
			out = append(out, edge.Callee)
		}
	}
	sort.Strings(out)
	return out
}

// checkDuplicates enforces that no two emitted files resolve to the same
// output path -- a compiler bug (two source functions encoding to the
// same internal path) must abort the run rather than silently overwrite
// one file with another.
func checkDuplicates(files []model.EmittedFile) error {
	seen := make(map[string]int, len(files))
	for i, f := range files {
		if prev, ok := seen[f.Path]; ok {
			return &diagnostics.DuplicateOutput{
				Path:    f.Path,
				Sources: [2]string{files[prev].Path, f.Path},
			}
		}
		seen[f.Path] = i
	}
	return nil
}
