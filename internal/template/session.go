package template

// Session holds the datapack-global debugging session lifecycle: the tick
// driver that polls whether a paused breakpoint marker wants to continue,
// resuming (self, by id, or immediately), stopping, and the two
// end-of-session sinks (the session ran to completion, or it was aborted).
//
// -resume_cases- is not a fixed body: the emitter binds it to a different
// fragment per global file -- every breakpoint call site dispatched by
// entity selector for NameResume, the same call sites dispatched against an
// already-selected @s for NameResumeSelf -- built once all functions have
// been emitted and their breakpoints collected.
func init() {
	register(NameTickStart, `scoreboard players operation $-ns- -ns-_global += $-ns- -ns-_constant
execute if score $-ns- -ns-_global matches 1 run function -datapack-:-ns-/tick_active
`)

	register(NameTickEnd, `execute as @e[tag=-ns-_breakpoint] at @s run function -datapack-:-ns-/session/poll_resume
`)

	register(NameResume, `-resume_cases-`)

	register(NameResumeSelf, `tag @s remove -ns-_active
-resume_cases-kill @s
`)

	register(NameResumeImmediate, `execute as @e[tag=-ns-_breakpoint,limit=1,sort=nearest] run function -datapack-:-ns-/session/resume_self
`)

	register(NameStop, `kill @e[tag=-ns-_breakpoint]
scoreboard players set $-ns- -ns-_global 0
function -datapack-:-ns-/session/on_exit
`)

	register(NameAbortSession, `-if_not_adapter-function -datapack-:-ns-/stop
`)

	register(NameOnSessionExitSuccessful, `-if_not_adapter-function -datapack-:-ns-/session/show_scores
`)

	register(NameOnSessionExit, `scoreboard players reset * -ns-_depth
scoreboard players reset * -ns-_anchor
`)
}
