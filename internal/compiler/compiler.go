// Package compiler wires the pure pipeline stages -- parse (via
// internal/datapack.Load), call-graph classification, and emission --
// into the single entry point the CLI front-end and any future caller
// (a DAP bridge, a test harness) drives the compiler through.
package compiler

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/go-mcfd/mcfd/internal/callgraph"
	"github.com/go-mcfd/mcfd/internal/config"
	"github.com/go-mcfd/mcfd/internal/datapack"
	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/emitter"
)

const packFormat = 48

// Result carries the outcome of one compilation: whatever lines the
// accumulating InvalidCommand diagnostics produced, for the caller to
// print after a successful run (a non-empty Collector is not a failure;
// it means the output datapack is usable but incomplete).
type Result struct {
	Collector *diagnostics.Collector
}

// Compile runs the full pipeline against opts, using fs for both reading
// the source datapack and writing the compiled one.
func Compile(fs afero.Fs, opts config.Options, log zerolog.Logger) (Result, error) {
	log.Info().Str("input", opts.Input).Str("namespace", opts.Namespace).Msg("loading source datapack")
	dp, err := datapack.Load(fs, opts.Input, opts.Namespace)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Int("functions", len(dp.Functions)).Msg("loaded source functions")

	graph := callgraph.Build(dp)
	reachable := callgraph.TransitiveClosure(graph, dp.Names())
	log.Debug().Int("reachable", len(reachable)).Msg("computed transitive call closure")

	log.Debug().Msg("emitting debug datapack")
	files, collector, err := emitter.Emit(dp, graph, opts.Shadow, opts.Adapter)
	if err != nil {
		return Result{}, err
	}
	if collector.Len() > 0 {
		log.Warn().Int("count", collector.Len()).Msg("some commands could not be classified; continuing with stubs")
	}

	description := "debug build of " + opts.Namespace
	if err := datapack.Write(fs, opts.Output, opts.Namespace, files, packFormat, description); err != nil {
		return Result{}, err
	}
	log.Info().Str("output", opts.Output).Int("files", len(files)).Msg("wrote debug datapack")

	return Result{Collector: collector}, nil
}
