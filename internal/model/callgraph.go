package model

// CalleeStatus classifies a single call-site edge.
type CalleeStatus int

const (
	CalleePresent CalleeStatus = iota
	CalleeMissing
	CalleeInvalid
)

func (s CalleeStatus) String() string {
	switch s {
	case CalleePresent:
		return "present"
	case CalleeMissing:
		return "missing"
	case CalleeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// CallEdge is one call-graph edge: caller calls callee at the given source
// line, with the callee's classification already resolved.
type CallEdge struct {
	Caller string
	Callee string
	Line   int
	Status CalleeStatus
}

// CallGraph is the directed multigraph over defined function names,
// stored as an adjacency map keyed by caller name -- never as
// self-referential node records, per the "no cyclic ownership" design rule.
type CallGraph struct {
	Edges map[string][]CallEdge
}

// NewCallGraph returns an empty graph.
func NewCallGraph() *CallGraph {
	return &CallGraph{Edges: make(map[string][]CallEdge)}
}

// AddEdge records one call-site edge, preserving source-declaration order
// (callers should add edges in line-number order).
func (g *CallGraph) AddEdge(e CallEdge) {
	g.Edges[e.Caller] = append(g.Edges[e.Caller], e)
}

// Callees returns the edges leaving caller, in the order they were added.
func (g *CallGraph) Callees(caller string) []CallEdge {
	return g.Edges[caller]
}
