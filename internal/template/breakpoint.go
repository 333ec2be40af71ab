package template

// Breakpoint covers a suspended line: summoning the paused marker at the
// breakpoint (its CustomName carries the literal "orig_ns:orig/fn:i" so a
// debug adapter reading the world state can identify which source line it
// paused at), the selector used to find it again for a specific call-site
// iteration, the skipped-callee continuation that resumes a function past
// a dead call site without ever entering it, and the diagnostic text shown
// when a breakpoint sits downstream of a function the compiler could not
// fully instrument.
func init() {
	register(NameSetBreakpoint, `scoreboard players set $-ns- -ns-_global 1
summon area_effect_cloud ~ ~ ~ {Tags:["-ns-_breakpoint","-ns-_active","-orig+fn-","-debug_anchor-"],CustomName:'{"text":"%s"}',Duration:2147483647,Age:-2147483648}
tag @s add -ns-_context
tellraw @a -minect_log-
execute unless score -fn_score_holder- -ns-_valid matches 1 run tellraw @a -minect_log_conditional-
`)

	register(NameBreakpointIterateSelector, `@e[tag=-ns-_breakpoint,tag=-orig+fn-,tag=-debug_anchor-,limit=1,sort=nearest]
`)

	register(NameContinueCurrentIteration, `function -datapack-:-orig/fn-/-position-
`)

	register(NameIterateSameExecutor, `execute as @e[tag=-ns-_context,limit=1,sort=nearest] at @s run function -datapack-:-call/fn-/iterate_same_executor
`)

	register(NameSkippedFunctionsWarning, `tellraw @a -minect_log-
scoreboard players add $-ns- -ns-_skipped 1
`)
}
