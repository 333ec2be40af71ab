package datapack

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
)

// packMetaSchema is the minimal shape a pack.mcmeta needs for the game to
// load the datapack at all: a "pack" object with an integer
// "pack_format" and a string "description".
const packMetaSchema = `{
	"type": "object",
	"required": ["pack"],
	"properties": {
		"pack": {
			"type": "object",
			"required": ["pack_format", "description"],
			"properties": {
				"pack_format": {"type": "integer"},
				"description": {"type": "string"}
			}
		}
	}
}`

type packMeta struct {
	Pack struct {
		PackFormat  int    `json:"pack_format"`
		Description string `json:"description"`
	} `json:"pack"`
}

func writePackMeta(fs afero.Fs, outRoot string, packFormat int, description string) error {
	meta := packMeta{}
	meta.Pack.PackFormat = packFormat
	meta.Pack.Description = description

	body, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return &diagnostics.OutputWriteFailure{Path: "pack.mcmeta", Cause: err}
	}
	if err := validatePackMeta(body); err != nil {
		return err
	}

	full := path.Join(outRoot, "pack.mcmeta")
	if err := afero.WriteFile(fs, full, body, 0o644); err != nil {
		return &diagnostics.OutputWriteFailure{Path: full, Cause: err}
	}
	return nil
}

func validatePackMeta(body []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("pack.mcmeta.schema.json", strings.NewReader(packMetaSchema)); err != nil {
		return &diagnostics.OutputWriteFailure{Path: "pack.mcmeta", Cause: err}
	}
	schema, err := compiler.Compile("pack.mcmeta.schema.json")
	if err != nil {
		return &diagnostics.OutputWriteFailure{Path: "pack.mcmeta", Cause: err}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return &diagnostics.OutputWriteFailure{Path: "pack.mcmeta", Cause: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &diagnostics.InvalidInput{Path: "pack.mcmeta", Reason_: err.Error()}
	}
	return nil
}
