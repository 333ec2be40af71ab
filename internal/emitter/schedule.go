package emitter

import (
	"fmt"
	"math"

	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// renderSchedule instruments a "schedule function"/"schedule clear" line.
// Append and replace summon an area_effect_cloud marker whose Age/Duration/
// WaitTime triple encodes the delay in ticks -- Duration is the tick count
// itself, Age and WaitTime the signed 32-bit minimum offset by it, all
// literal integers the closed placeholder grammar cannot derive
// (substitution is simultaneous text replacement, not arithmetic) -- so the
// "%d" verbs in the registered template are filled by fmt.Sprintf here,
// before the rest of the template's placeholders go through the normal
// Instantiate pass. Clear is a no-op when no matching marker exists;
// "schedule clear" on something that was never scheduled is ordinary, not
// an error.
func renderSchedule(env model.PlaceholderEnvironment, prefix string, sc *model.ScheduleCall) (string, error) {
	callNS, callPath, ok := splitFQName(sc.Callee)
	if !ok {
		callNS, callPath = sc.Callee, ""
	}
	ns := env[template.PNamespace]
	env = env.Merge(model.PlaceholderEnvironment{
		template.PScheduleNS:    callNS,
		template.PScheduleFnTag: template.EncodeTag(ns, callNS, callPath),
	})

	var name template.Name
	switch sc.Kind {
	case model.ScheduleAppend:
		name = template.NameScheduleAppend
	case model.ScheduleReplace:
		name = template.NameScheduleReplace
	case model.ScheduleClear:
		name = template.NameScheduleClear
	}

	raw := template.Library[name]
	if sc.Kind != model.ScheduleClear {
		// Age/WaitTime are chosen so the game's own per-tick Age increment on
		// an area_effect_cloud reaches 0 -- and fires -- exactly sc.Ticks
		// ticks from now: the signed 32-bit minimum plus the delay.
		age := math.MinInt32 + sc.Ticks
		raw = fmt.Sprintf(raw, age, sc.Ticks, age)
	}

	body, err := template.Instantiate(string(name), raw, env)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return body, nil
	}
	return prefix + body, nil
}
