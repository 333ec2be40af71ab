package template

// Call covers a plain `function` invocation inside an instrumented line:
// entering the callee under call-depth tracking, and returning control
// (with the original executor's context restored) once the callee's own
// debug wrapper finishes.
func init() {
	register(NameCallFunction, `scoreboard players add @s -ns-_depth 1
function -datapack-:-call/fn-/start
scoreboard players remove @s -ns-_depth 1
`)

	register(NameReturnSelf, `execute as @e[tag=-ns-_context,limit=1,sort=nearest] at @s run function -datapack-:-orig/fn-/-position-
`)
}
