package emitter

import (
	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

// needsContextEntity reports whether an execute chain's "as" clause can
// select more than one entity. A single, stable executor can be re-entered
// directly by selector on resume; a multi-entity "as @e[...]" cannot, since
// which of the matched entities a given suspended call belongs to is not
// otherwise recoverable -- those call sites get a dedicated context marker
// instead, tagged to the call site so select_entity can find the right one
// back.
func needsContextEntity(chain model.ModifierChain) bool {
	return chain.MultiSelector()
}

// wrapMultiSelectorCall instruments a function call reached through an
// "as" clause that can match more than one entity: each matched entity
// gets its own tagged context marker before the chain runs, so a
// breakpoint reached underneath can be resumed against the one entity it
// actually paused for instead of "the nearest one right now".
func wrapMultiSelectorCall(env model.PlaceholderEnvironment, prefix, body string) (string, error) {
	animate, err := template.Instantiate(string(template.NameAnimateContext), template.Library[template.NameAnimateContext], env)
	if err != nil {
		return "", err
	}
	iterate, err := template.Instantiate(string(template.NameIterateSameExecutor), template.Library[template.NameIterateSameExecutor], env)
	if err != nil {
		return "", err
	}
	return prefix + animate + body + iterate, nil
}
