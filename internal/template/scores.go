package template

// Scores covers the summary reporting emitted once a session ends: which
// functions the compiler could not instrument (and so silently skipped
// over rather than break), and the call/breakpoint counters accumulated
// along the way.
func init() {
	register(NameShowSkipped, `-if_not_adapter-`)

	register(NameShowScores, `-if_not_adapter-scoreboard players reset $-ns- -ns-_skipped
`)

	register(NameUpdateScores, `scoreboard players operation $-ns- -ns-_global += @s -ns-_depth
`)
}
