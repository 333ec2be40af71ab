package model

import "strings"

// ModifierKind distinguishes the execute sub-clauses the emitter needs to
// reason about individually; order among clauses of the same kind (and
// across kinds) is preserved by ModifierChain, since execute semantics are
// order-dependent.
type ModifierKind int

const (
	ModAs ModifierKind = iota
	ModAt
	ModPositioned
	ModPositionedAs
	ModRotated
	ModRotatedAs
	ModFacing
	ModFacingEntity
	ModAnchored
	ModIn
	ModAlign
	ModIf
	ModUnless
	ModStore
)

func (k ModifierKind) String() string {
	switch k {
	case ModAs:
		return "as"
	case ModAt:
		return "at"
	case ModPositioned:
		return "positioned"
	case ModPositionedAs:
		return "positioned as"
	case ModRotated:
		return "rotated"
	case ModRotatedAs:
		return "rotated as"
	case ModFacing:
		return "facing"
	case ModFacingEntity:
		return "facing entity"
	case ModAnchored:
		return "anchored"
	case ModIn:
		return "in"
	case ModAlign:
		return "align"
	case ModIf:
		return "if"
	case ModUnless:
		return "unless"
	case ModStore:
		return "store"
	default:
		return "unknown"
	}
}

// Modifier is one execute sub-clause, keyword plus its raw argument text.
type Modifier struct {
	Kind ModifierKind
	// Arg is everything after the keyword(s) up to (not including) the next
	// sub-clause, verbatim -- e.g. for "as @e[type=sheep]", Arg is
	// "@e[type=sheep]".
	Arg string
}

// ChangesExecutor reports whether this clause can change the command's
// executing entity, which is what the emitter needs to know to decide
// whether a context entity summon is required at all.
func (m Modifier) ChangesExecutor() bool {
	return m.Kind == ModAs
}

// MultiSelector reports whether Arg is a selector that can match more than
// one entity (@e or @a, unless narrowed by limit=1), which is what
// distinguishes a plain context summon from one requiring the
// iterate_same_executor driver.
func (m Modifier) MultiSelector() bool {
	arg := strings.TrimSpace(m.Arg)
	if !strings.HasPrefix(arg, "@e") && !strings.HasPrefix(arg, "@a") {
		return false
	}
	return !strings.Contains(arg, "limit=1]") && !strings.Contains(arg, "limit=1,")
}

// ModifierChain is an ordered list of execute sub-clauses. Order must be
// preserved verbatim; execute's semantics depend on it.
type ModifierChain []Modifier

// Raw renders the chain back into "kw arg kw arg ..." form for embedding in
// an emitted execute line.
func (c ModifierChain) Raw() string {
	var b strings.Builder
	for i, m := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.Kind.String())
		if m.Arg != "" {
			b.WriteByte(' ')
			b.WriteString(m.Arg)
		}
	}
	return b.String()
}

// HasExecutorChange reports whether any clause in the chain can change the
// executing entity (an "as" clause).
func (c ModifierChain) HasExecutorChange() bool {
	for _, m := range c {
		if m.ChangesExecutor() {
			return true
		}
	}
	return false
}

// MultiSelector reports whether any "as" clause in the chain selects
// potentially more than one entity.
func (c ModifierChain) MultiSelector() bool {
	for _, m := range c {
		if m.ChangesExecutor() && m.MultiSelector() {
			return true
		}
	}
	return false
}
