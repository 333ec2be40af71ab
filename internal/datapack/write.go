package datapack

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
)

// Write stages a full debug datapack at outRoot: pack.mcmeta first (so a
// reader inspecting a partially-written tree sees a recognizable datapack
// as early as possible), then every emitted file, then the load/tick
// function tags. The emitted files are sorted by path and their writes
// started in that order, but the writes run concurrently via errgroup, so
// the order in which they land on disk is not fixed; file contents do not
// depend on it, since they are independent, already-fully-rendered files.
func Write(fs afero.Fs, outRoot, ns string, files []model.EmittedFile, packFormat int, description string) error {
	if err := writePackMeta(fs, outRoot, packFormat, description); err != nil {
		return err
	}

	sorted := make([]model.EmittedFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	if err := writeAll(fs, outRoot, sorted); err != nil {
		return err
	}

	return writeManifest(fs, outRoot, ns)
}

func writeAll(fs afero.Fs, outRoot string, files []model.EmittedFile) error {
	var g errgroup.Group
	for _, f := range files {
		f := f
		g.Go(func() error {
			full := path.Join(outRoot, f.Path)
			if err := fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				return &diagnostics.OutputWriteFailure{Path: full, Cause: err}
			}
			if err := afero.WriteFile(fs, full, f.Bytes, 0o644); err != nil {
				return &diagnostics.OutputWriteFailure{Path: full, Cause: err}
			}
			return nil
		})
	}
	return g.Wait()
}
