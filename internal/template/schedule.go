package template

// Schedule covers a `schedule function`/`schedule clear` source line. A
// scheduled call is represented by an area_effect_cloud marker rather than
// a bare vanilla /schedule, so that an in-flight call can be found,
// inspected, and cancelled by entity selector the same way a breakpoint
// marker can. The marker's Age/Duration/WaitTime triple encodes the delay;
// the Age, Duration and WaitTime holes are literal "%d" verbs that the
// emitter fills with fmt.Sprintf (an ordinary Printf substitution done
// before Instantiate ever runs) because expressing "signed 32-bit minimum
// plus N ticks" requires integer arithmetic that the closed, non-recursive
// placeholder grammar cannot perform -- see internal/emitter/schedule.go.
func init() {
	register(NameSchedule, `execute as @e[tag=-ns-_schedule,tag=-schedule+fn-] run function -datapack-:-ns-/schedule/-schedule+fn-/tick
`)

	register(NameScheduleAppend, `summon area_effect_cloud ~ ~ ~ {Tags:["-ns-_schedule","-schedule+fn-"],Age:%d,Duration:%d,WaitTime:%d}
`)

	register(NameScheduleReplace, `kill @e[tag=-ns-_schedule,tag=-schedule+fn-]
summon area_effect_cloud ~ ~ ~ {Tags:["-ns-_schedule","-schedule+fn-"],Age:%d,Duration:%d,WaitTime:%d}
scoreboard players set $-ns- -ns-_global 1
`)

	register(NameScheduleClear, `execute if entity @e[tag=-ns-_schedule,tag=-schedule+fn-] run kill @e[tag=-ns-_schedule,tag=-schedule+fn-]
`)
}
