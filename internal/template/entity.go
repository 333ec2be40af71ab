package template

// Entity covers the context-carrying marker entities: re-selecting the
// original executor at a breakpoint or after an execute chain, freezing an
// area_effect_cloud used as a scheduled-call marker so it stops aging on
// its own, the per-tick age decrement that drives it instead, and the
// small per-entity id allocator used to keep concurrently paused markers
// from colliding on tags.
func init() {
	register(NameSelectEntity, `execute as @e[tag=-ns-_context,tag=-call+fn-,limit=1,sort=nearest] run -minect_log-
`)

	register(NameFreezeAEC, `data merge entity @s {Duration:2147483647,WaitTime:2147483647}
`)

	register(NameDecrementAge, `execute as @e[tag=-ns-_schedule] run data merge entity @s {Age:2147483647}
`)

	register(NameAnimateContext, `particle minecraft:end_rod ~ ~0.5 ~ 0 0 0 0 1 force
`)

	register(NameIDInstall, `scoreboard objectives add -ns-_id dummy
scoreboard players set $-ns- -ns-_id 0
`)

	register(NameIDAllocate, `scoreboard players add $-ns- -ns-_id 1
scoreboard players operation @s -ns-_id = $-ns- -ns-_id
`)
}
