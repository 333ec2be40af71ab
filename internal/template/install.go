package template

// Install seeds the scoreboard objectives and constant holders a debug
// datapack needs before any instrumented function can run: per-executor
// call depth and anchor tracking, the global breakpoint flag, and the
// skipped-function counters. Uninstall removes them, leaving the world as
// it was found.
func init() {
	register(NameInstall, `scoreboard objectives add -ns-_global dummy
scoreboard objectives add -ns-_depth dummy
scoreboard objectives add -ns-_anchor dummy
scoreboard objectives add -ns-_valid dummy
scoreboard objectives add -ns-_constant dummy
scoreboard objectives add -ns-_skipped dummy
scoreboard players set $-ns- -ns-_constant 1
scoreboard players set $-ns- -ns-_global 0
tag @s add -ns-_installed
`)

	register(NameUninstall, `scoreboard objectives remove -ns-_global
scoreboard objectives remove -ns-_depth
scoreboard objectives remove -ns-_anchor
scoreboard objectives remove -ns-_valid
scoreboard objectives remove -ns-_constant
scoreboard objectives remove -ns-_skipped
kill @e[tag=-ns-_breakpoint]
kill @e[tag=-ns-_schedule]
`)
}
