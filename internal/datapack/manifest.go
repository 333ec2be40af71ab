package datapack

import (
	"encoding/json"
	"path"

	"github.com/spf13/afero"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
)

type functionTag struct {
	Values []string `json:"values"`
}

// writeManifest emits the minecraft:load and minecraft:tick function tags
// every datapack needs to have its install/tick hooks picked up
// automatically: install runs once when the datapack (re)loads, tick
// fires every game tick and drives the debug session's poll loop.
func writeManifest(fs afero.Fs, outRoot, ns string) error {
	load := functionTag{Values: []string{model.RootNamespace + ":" + ns + "/install"}}
	tick := functionTag{Values: []string{model.RootNamespace + ":" + ns + "/tick"}}

	if err := writeJSON(fs, path.Join(outRoot, "data/minecraft/tags/functions/load.json"), load); err != nil {
		return err
	}
	return writeJSON(fs, path.Join(outRoot, "data/minecraft/tags/functions/tick.json"), tick)
}

func writeJSON(fs afero.Fs, full string, v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &diagnostics.OutputWriteFailure{Path: full, Cause: err}
	}
	body = []byte(model.EnsureTrailingNewline(string(body)))
	if err := afero.WriteFile(fs, full, body, 0o644); err != nil {
		return &diagnostics.OutputWriteFailure{Path: full, Cause: err}
	}
	return nil
}
