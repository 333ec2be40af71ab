// Package datapack implements the two filesystem-facing edges of a
// compilation: reading a vanilla datapack tree into internal/model, and
// writing a compiled file set back out. Both operate over an afero.Fs so
// the whole pipeline is testable against an in-memory filesystem without
// touching disk.
package datapack

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/parser"
)

// Load walks root for every "data/<namespace>/functions/**/*.mcfunction"
// file and parses it into a SourceDatapack under internalNS. A line that
// fails to parse does not abort the load: it is kept as a best-effort
// Opaque fallback, its reason recorded on SourceLine, and the owning
// function's Valid flag is cleared so the emitter can still produce a
// stub for it.
func Load(fs afero.Fs, root, internalNS string) (*model.SourceDatapack, error) {
	info, err := fs.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &diagnostics.InvalidInput{Path: root, Reason_: "not a directory"}
	}

	if ok, _ := afero.Exists(fs, path.Join(root, "pack.mcmeta")); !ok {
		return nil, &diagnostics.InvalidInput{Path: root, Reason_: "missing pack.mcmeta"}
	}

	dataDir := path.Join(root, "data")
	if ok, _ := afero.DirExists(fs, dataDir); !ok {
		return nil, &diagnostics.InvalidInput{Path: root, Reason_: "missing data/ directory"}
	}

	namespaces, err := afero.ReadDir(fs, dataDir)
	if err != nil {
		return nil, &diagnostics.InvalidInput{Path: dataDir, Reason_: err.Error()}
	}

	dp := model.NewSourceDatapack(internalNS)

	var nsNames []string
	for _, ns := range namespaces {
		if ns.IsDir() {
			nsNames = append(nsNames, ns.Name())
		}
	}
	sort.Strings(nsNames)

	for _, ns := range nsNames {
		funcDir := path.Join(dataDir, ns, "functions")
		if ok, _ := afero.DirExists(fs, funcDir); !ok {
			continue
		}
		files, err := collectFunctionFiles(fs, funcDir)
		if err != nil {
			return nil, &diagnostics.InvalidInput{Path: funcDir, Reason_: err.Error()}
		}
		sort.Strings(files)

		for _, f := range files {
			origPath := strings.TrimSuffix(strings.TrimPrefix(f, funcDir+"/"), ".mcfunction")
			fn, err := loadFunction(fs, f, ns, origPath)
			if err != nil {
				return nil, err
			}
			dp.Functions[fn.FQName()] = fn
		}
	}

	return dp, nil
}

func collectFunctionFiles(fs afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".mcfunction") {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func loadFunction(fs afero.Fs, diskPath, ns, origPath string) (*model.SourceFunction, error) {
	raw, err := afero.ReadFile(fs, diskPath)
	if err != nil {
		return nil, &diagnostics.InvalidInput{Path: diskPath, Reason_: err.Error()}
	}

	fn := &model.SourceFunction{OrigNS: ns, OrigPath: origPath, Valid: true}
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}

	for i, raw := range lines {
		parsed, perr := parser.ParseLine(raw)
		line := model.SourceLine{Number: i + 1, Raw: raw, Parsed: parsed}
		if perr != nil {
			line.InvalidReason = perr.Reason
			line.InvalidColumn = perr.ByteRange
			fn.Valid = false
		}
		fn.Lines = append(fn.Lines, line)
	}

	return fn, nil
}
