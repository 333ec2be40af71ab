package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/parser"
)

func TestParseLine_Breakpoint(t *testing.T) {
	line, err := parser.ParseLine("  # breakpoint  ")
	require.Nil(t, err)
	assert.Equal(t, model.LineBreakpoint, line.Kind)
}

func TestParseLine_BreakpointRequiresExactSpacing(t *testing.T) {
	line, err := parser.ParseLine("#  breakpoint")
	require.Nil(t, err)
	assert.Equal(t, model.LineOpaque, line.Kind, "two spaces after # is an ordinary comment, not a breakpoint")
}

func TestParseLine_OrdinaryComment(t *testing.T) {
	line, err := parser.ParseLine("# just a note")
	require.Nil(t, err)
	require.Equal(t, model.LineOpaque, line.Kind)
}

func TestParseLine_BareFunctionCall(t *testing.T) {
	line, err := parser.ParseLine("function foo:bar/baz")
	require.Nil(t, err)
	require.Equal(t, model.LineFunctionCall, line.Kind)
	assert.Equal(t, "foo:bar/baz", line.Call.Callee)
	assert.Empty(t, line.Call.Modifiers)
}

func TestParseLine_MalformedFunctionCall(t *testing.T) {
	line, err := parser.ParseLine("function Foo:Bar")
	require.NotNil(t, err)
	assert.Equal(t, model.LineOpaque, line.Kind)
}

func TestParseLine_ScheduleAppend(t *testing.T) {
	line, err := parser.ParseLine("schedule function foo:cb 5t append")
	require.Nil(t, err)
	require.Equal(t, model.LineSchedule, line.Kind)
	assert.Equal(t, model.ScheduleAppend, line.Schedule.Kind)
	assert.Equal(t, "foo:cb", line.Schedule.Callee)
	assert.Equal(t, 5, line.Schedule.Ticks)
}

func TestParseLine_ScheduleDefaultsToAppend(t *testing.T) {
	line, err := parser.ParseLine("schedule function foo:cb 5t")
	require.Nil(t, err)
	assert.Equal(t, model.ScheduleAppend, line.Schedule.Kind)
}

func TestParseLine_ScheduleClear(t *testing.T) {
	line, err := parser.ParseLine("schedule clear foo:cb")
	require.Nil(t, err)
	require.Equal(t, model.LineSchedule, line.Kind)
	assert.Equal(t, model.ScheduleClear, line.Schedule.Kind)
}

func TestParseLine_ExecuteAsRunFunction(t *testing.T) {
	line, err := parser.ParseLine("execute as @e[type=sheep] run function foo:callee")
	require.Nil(t, err)
	require.Equal(t, model.LineExecuteRun, line.Kind)

	inner, chain := line.Flatten()
	require.Equal(t, model.LineFunctionCall, inner.Kind)
	assert.Equal(t, "foo:callee", inner.Call.Callee)
	require.Len(t, chain, 1)
	assert.Equal(t, model.ModAs, chain[0].Kind)
	assert.Equal(t, "@e[type=sheep]", chain[0].Arg)
	assert.True(t, chain.MultiSelector())
}

func TestParseLine_ExecutePositionedAs(t *testing.T) {
	line, err := parser.ParseLine("execute positioned as @e[tag=anchor] run say hi")
	require.Nil(t, err)
	inner, chain := line.Flatten()
	assert.Equal(t, model.LineOpaque, inner.Kind)
	require.Len(t, chain, 1)
	assert.Equal(t, model.ModPositionedAs, chain[0].Kind)
}

func TestParseLine_ExecuteNestedModifiersPreserveOrder(t *testing.T) {
	line, err := parser.ParseLine("execute at @s as @p anchored eyes run function foo:bar")
	require.Nil(t, err)
	_, chain := line.Flatten()
	require.Len(t, chain, 3)
	assert.Equal(t, model.ModAt, chain[0].Kind)
	assert.Equal(t, model.ModAs, chain[1].Kind)
	assert.Equal(t, model.ModAnchored, chain[2].Kind)
}

func TestParseLine_ExecuteWithoutRunIsOpaque(t *testing.T) {
	line, err := parser.ParseLine("execute if score foo bar matches 1")
	require.Nil(t, err)
	assert.Equal(t, model.LineOpaque, line.Kind)
}

func TestParseLine_OpaqueNeedsContextRestore(t *testing.T) {
	line, err := parser.ParseLine("tp @s ~ ~1 ~")
	require.Nil(t, err)
	require.Equal(t, model.LineOpaque, line.Kind)
	assert.True(t, line.Opaque.NeedsContextRestore)
}

func TestParseLine_OpaqueSafeWithoutContext(t *testing.T) {
	line, err := parser.ParseLine("say hello world")
	require.Nil(t, err)
	require.Equal(t, model.LineOpaque, line.Kind)
	assert.False(t, line.Opaque.NeedsContextRestore)
}

func TestParseLine_BlankLine(t *testing.T) {
	line, err := parser.ParseLine("")
	require.Nil(t, err)
	assert.Equal(t, model.LineOpaque, line.Kind)
}
