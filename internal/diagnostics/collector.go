package diagnostics

// Collector accumulates InvalidCommand diagnostics across an entire
// compilation. InvalidCommand is the one taxonomy member that never aborts
// the run (spec policy: "accumulates into a diagnostics list ... so
// incomplete datapacks still produce a usable debug datapack"); every
// other kind is returned directly as an error by the stage that detects
// it.
type Collector struct {
	invalid []*InvalidCommand
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records one InvalidCommand occurrence.
func (c *Collector) Add(d *InvalidCommand) {
	c.invalid = append(c.invalid, d)
}

// Len reports how many InvalidCommand diagnostics have been collected.
func (c *Collector) Len() int {
	return len(c.invalid)
}

// All returns every collected diagnostic, in the order Add was called.
func (c *Collector) All() []*InvalidCommand {
	out := make([]*InvalidCommand, len(c.invalid))
	copy(out, c.invalid)
	return out
}

// Lines renders every collected diagnostic via Render, for stderr output
// at the end of compilation.
func (c *Collector) Lines() []string {
	lines := make([]string, len(c.invalid))
	for i, d := range c.invalid {
		lines[i] = Render(d)
	}
	return lines
}
