// Package template holds the fixed command-file templates of §4.4 and the
// single substitution operation legal on them. A template is plain
// ".mcfunction" text with embedded placeholders; Library exposes each by
// name so the emitter can select one, build a PlaceholderEnvironment, and
// call Instantiate.
package template

// Name identifies one of the fixed, "one subject each" templates.
type Name string

const (
	NameInstall                  Name = "install"
	NameUninstall                Name = "uninstall"
	NameTickStart                Name = "tick_start"
	NameTickEnd                  Name = "tick_end"
	NameResume                   Name = "resume"
	NameResumeSelf               Name = "resume_self"
	NameResumeImmediate          Name = "resume_immediate"
	NameStop                     Name = "stop"
	NameAbortSession             Name = "abort_session"
	NameOnSessionExitSuccessful  Name = "on_session_exit_successful"
	NameOnSessionExit            Name = "on_session_exit"
	NameSelectEntity             Name = "select_entity"
	NameFreezeAEC                Name = "freeze_aec"
	NameDecrementAge             Name = "decrement_age"
	NameAnimateContext           Name = "animate_context"
	NameSchedule                 Name = "schedule"
	NameScheduleAppend           Name = "schedule_append"
	NameScheduleReplace          Name = "schedule_replace"
	NameScheduleClear            Name = "schedule_clear"
	NameCallFunction             Name = "call_function"
	NameReturnSelf               Name = "return_self"
	NameSetBreakpoint            Name = "set_breakpoint"
	NameBreakpointIterateSelector Name = "breakpoint_iterate_selector"
	NameContinueCurrentIteration Name = "continue_current_iteration"
	NameIterateSameExecutor      Name = "iterate_same_executor"
	NameSkippedFunctionsWarning  Name = "skipped_functions_warning"
	NameShowSkipped              Name = "show_skipped"
	NameShowScores               Name = "show_scores"
	NameUpdateScores             Name = "update_scores"
	NameIDInstall                Name = "id/install"
	NameIDAllocate               Name = "id/allocate"
)

// Library maps every fixed template name to its text. Populated by init()
// in the per-subject files (install.go, session.go, breakpoint.go,
// schedule.go, call.go, entity.go, scores.go) so each stays "one subject each" per
// §4.4 while still composing into a single lookup table.
var Library = map[Name]string{}

func register(name Name, text string) {
	Library[name] = text
}

// Get returns the fixed template body for name.
func Get(name Name) (string, bool) {
	t, ok := Library[name]
	return t, ok
}
