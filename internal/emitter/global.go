package emitter

import (
	"fmt"
	"strings"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// globalNames lists the fixed, one-per-datapack templates and the
// resource path (relative to the internal namespace) each is written to.
var globalNames = []struct {
	name template.Name
	path string
}{
	{template.NameInstall, "install"},
	{template.NameUninstall, "uninstall"},
	{template.NameTickStart, "tick"},
	{template.NameTickEnd, "session/poll_resume"},
	{template.NameResume, "resume"},
	{template.NameResumeSelf, "session/resume_self"},
	{template.NameResumeImmediate, "resume_immediate"},
	{template.NameStop, "stop"},
	{template.NameAbortSession, "abort"},
	{template.NameOnSessionExitSuccessful, "session/on_exit_successful"},
	{template.NameOnSessionExit, "session/on_exit"},
	{template.NameShowSkipped, "session/show_skipped"},
	{template.NameShowScores, "session/show_scores"},
	{template.NameIDInstall, "id/install"},
}

// emitGlobalFiles instantiates every fixed datapack-wide control file
// against the shared base environment. Most of these do not vary per
// source function, only per internal namespace; debug:resume and
// debug:resume_self are the exception -- their -resume_cases- fragment is
// the union of every breakpoint call site collected across all functions,
// which is why this must run after every function has been emitted. When
// adapter is set, every -if_not_adapter- chat message is suppressed, since
// a debug adapter renders its own UI instead of reading the game's chat.
func emitGlobalFiles(base model.PlaceholderEnvironment, missing, invalid []string, cases functionResumeCases, adapter bool) ([]model.EmittedFile, error) {
	ns := base[template.PNamespace]
	shared := base.Merge(model.PlaceholderEnvironment{
		template.PReason:           "stopped",
		template.PMissingFunctions: formatFunctionList(missing),
		template.PInvalidFunctions: formatFunctionList(invalid),
	})

	var files []model.EmittedFile
	for _, g := range globalNames {
		env := shared.With(template.PResumeCases, "").With(template.PIfNotAdapter, "")

		switch g.name {
		case template.NameResume:
			env = env.With(template.PResumeCases, strings.Join(cases.All, ""))
		case template.NameResumeSelf:
			env = env.With(template.PResumeCases, strings.Join(cases.Self, ""))
		}

		switch g.name {
		case template.NameAbortSession:
			env = env.With(template.PIfNotAdapter, chatMessage(adapter, `[{"text":"debug session ended"}]`))
		case template.NameOnSessionExitSuccessful:
			env = env.With(template.PIfNotAdapter, chatMessage(adapter, `[{"text":"debug session completed"}]`))
		case template.NameShowSkipped:
			text := fmt.Sprintf(`[{"text":"skipped missing: %s; skipped invalid: %s"}]`, formatFunctionList(missing), formatFunctionList(invalid))
			env = env.With(template.PIfNotAdapter, chatMessage(adapter, text))
		case template.NameShowScores:
			env = env.With(template.PIfNotAdapter, chatMessage(adapter, `[{"text":"debug session scores"}]`))
		}

		body, err := template.Instantiate(string(g.name), template.Library[g.name], env)
		if err != nil {
			return nil, err
		}
		files = append(files, model.NewEmittedFile(diskPath(model.RootNamespace, ns+"/"+g.path), body))
	}
	return files, nil
}

// chatMessage renders the "tellraw @a <payload>" line -if_not_adapter-
// binds to, or "" when a debug adapter is driving the session and chat
// meant for a human player should not be sent at all.
func chatMessage(adapter bool, payload string) string {
	if adapter {
		return ""
	}
	return fmt.Sprintf("tellraw @a %s\n", payload)
}

func formatFunctionList(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	if out == "" {
		return "none"
	}
	return out
}
