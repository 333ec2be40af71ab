package callgraph

import "github.com/go-mcfd/mcfd/internal/model"

// TransitiveClosure walks g starting from roots and returns every function
// name reached, including the roots themselves. Unlike a typical
// reachability check, this walk must tolerate cycles without error:
// recursive Minecraft functions (a function that calls itself, directly or
// through a schedule) are ordinary, valid input, not a compiler error --
// only missing/invalid edges stop the walk at that node (there is nothing
// further to traverse into), they are not a cycle and not rejected.
//
// Every defined function is, in principle, an external entry point (the
// game can /function any of them directly), so the emitter's own call
// (internal/compiler) passes every function name in the datapack as a
// root: the resulting set is then exactly the datapack's functions, but
// computed as a real graph walk rather than asserted, so a future caller
// that wants to instrument only a reachable subset (e.g. "just what main
// calls") can reuse this unchanged.
func TransitiveClosure(g *model.CallGraph, roots []string) map[string]bool {
	visited := make(map[string]bool, len(roots))
	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		for _, edge := range g.Edges[name] {
			if edge.Status != model.CalleePresent {
				continue
			}
			visit(edge.Callee)
		}
	}
	for _, r := range roots {
		visit(r)
	}
	return visited
}
