// Package callgraph builds the declared-to-callee graph of a source
// datapack and classifies every call site as present, missing, or invalid,
// per §4.2. A function's own validity is local (decided once, while
// parsing); callee status is stored per edge, which is what lets the
// compiler keep instrumenting the callers of a broken function instead of
// refusing to compile the whole datapack.
package callgraph

import (
	"sort"

	"github.com/go-mcfd/mcfd/internal/model"
)

// Build scans every function's parsed lines and returns the call graph,
// with every edge already classified against dp. Functions are walked in
// lexicographic name order and each function's lines in source order, so
// the resulting edge lists -- and every diagnostic derived from them -- are
// deterministic regardless of map iteration order.
func Build(dp *model.SourceDatapack) *model.CallGraph {
	g := model.NewCallGraph()

	for _, name := range sortedNames(dp) {
		fn := dp.Functions[name]
		for _, line := range fn.Lines {
			callee, lineNo, ok := calleeOf(line)
			if !ok {
				continue
			}
			g.AddEdge(model.CallEdge{
				Caller: name,
				Callee: callee,
				Line:   lineNo,
				Status: classify(dp, callee),
			})
		}
	}

	return g
}

// calleeOf extracts the function name a line calls, if any. Schedule
// clear does not call anything (it cancels a pending call), so it is
// excluded.
func calleeOf(line model.SourceLine) (callee string, lineNo int, ok bool) {
	inner, _ := line.Parsed.Flatten()
	switch inner.Kind {
	case model.LineFunctionCall:
		return inner.Call.Callee, line.Number, true
	case model.LineSchedule:
		if inner.Schedule.Kind == model.ScheduleClear {
			return "", 0, false
		}
		return inner.Schedule.Callee, line.Number, true
	default:
		return "", 0, false
	}
}

// classify decides present/missing/invalid for one callee reference.
func classify(dp *model.SourceDatapack, callee string) model.CalleeStatus {
	fn, present := dp.Lookup(callee)
	if !present {
		return model.CalleeMissing
	}
	if !fn.Valid {
		return model.CalleeInvalid
	}
	return model.CalleePresent
}

func sortedNames(dp *model.SourceDatapack) []string {
	names := dp.Names()
	sort.Strings(names)
	return names
}
