package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/callgraph"
	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/parser"
)

func mustParse(t *testing.T, raw string) model.ParsedLine {
	t.Helper()
	line, err := parser.ParseLine(raw)
	require.Nil(t, err)
	return line
}

func TestBuild_ClassifiesPresentMissingInvalid(t *testing.T) {
	dp := model.NewSourceDatapack("mcfd")

	caller := &model.SourceFunction{OrigNS: "foo", OrigPath: "caller", Valid: true}
	caller.Lines = []model.SourceLine{
		{Number: 1, Raw: "function foo:present", Parsed: mustParse(t, "function foo:present")},
		{Number: 2, Raw: "function foo:missing", Parsed: mustParse(t, "function foo:missing")},
		{Number: 3, Raw: "function foo:broken", Parsed: mustParse(t, "function foo:broken")},
	}
	dp.Functions["foo:caller"] = caller

	present := &model.SourceFunction{OrigNS: "foo", OrigPath: "present", Valid: true}
	dp.Functions["foo:present"] = present

	broken := &model.SourceFunction{OrigNS: "foo", OrigPath: "broken", Valid: false}
	dp.Functions["foo:broken"] = broken

	g := callgraph.Build(dp)
	edges := g.Callees("foo:caller")
	require.Len(t, edges, 3)
	assert.Equal(t, model.CalleePresent, edges[0].Status)
	assert.Equal(t, model.CalleeMissing, edges[1].Status)
	assert.Equal(t, model.CalleeInvalid, edges[2].Status)
}

func TestTransitiveClosure_ToleratesCycles(t *testing.T) {
	dp := model.NewSourceDatapack("mcfd")

	a := &model.SourceFunction{OrigNS: "foo", OrigPath: "a", Valid: true, Lines: []model.SourceLine{
		{Number: 1, Raw: "function foo:b", Parsed: mustParse(t, "function foo:b")},
	}}
	b := &model.SourceFunction{OrigNS: "foo", OrigPath: "b", Valid: true, Lines: []model.SourceLine{
		{Number: 1, Raw: "function foo:a", Parsed: mustParse(t, "function foo:a")},
	}}
	dp.Functions["foo:a"] = a
	dp.Functions["foo:b"] = b

	g := callgraph.Build(dp)
	closure := callgraph.TransitiveClosure(g, []string{"foo:a"})

	assert.True(t, closure["foo:a"])
	assert.True(t, closure["foo:b"])
	assert.Len(t, closure, 2)
}
