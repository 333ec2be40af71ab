package datapack_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/callgraph"
	"github.com/go-mcfd/mcfd/internal/datapack"
	"github.com/go-mcfd/mcfd/internal/emitter"
)

func writePackMetaFixture(t *testing.T, fs afero.Fs, root string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, root+"/pack.mcmeta",
		[]byte(`{"pack":{"pack_format":48,"description":"test fixture"}}`), 0o644))
}

func TestLoad_ParsesFunctionsUnderDataNamespace(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePackMetaFixture(t, fs, "/pack")
	require.NoError(t, afero.WriteFile(fs, "/pack/data/demo/functions/main.mcfunction",
		[]byte("# breakpoint\nfunction demo:helper\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/pack/data/demo/functions/helper.mcfunction",
		[]byte("say hi\n"), 0o644))

	dp, err := datapack.Load(fs, "/pack", "mcfd")
	require.NoError(t, err)

	main, ok := dp.Lookup("demo:main")
	require.True(t, ok)
	assert.True(t, main.Valid)
	require.Len(t, main.Lines, 2)
	assert.Equal(t, "demo:helper", main.Lines[1].Parsed.Call.Callee)
}

func TestLoad_MissingDataDirIsInvalidInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePackMetaFixture(t, fs, "/pack")
	require.NoError(t, fs.MkdirAll("/pack", 0o755))

	_, err := datapack.Load(fs, "/pack", "mcfd")
	require.Error(t, err)
}

func TestLoad_MissingPackMcmetaIsInvalidInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pack/data/demo/functions/main.mcfunction", []byte("say hi\n"), 0o644))

	_, err := datapack.Load(fs, "/pack", "mcfd")
	require.Error(t, err)
}

func TestWrite_ProducesPackMetaAndManifest(t *testing.T) {
	srcFs := afero.NewMemMapFs()
	writePackMetaFixture(t, srcFs, "/pack")
	require.NoError(t, afero.WriteFile(srcFs, "/pack/data/demo/functions/main.mcfunction", []byte("say hi\n"), 0o644))

	dp, err := datapack.Load(srcFs, "/pack", "mcfd")
	require.NoError(t, err)
	graph := callgraph.Build(dp)
	files, _, err := emitter.Emit(dp, graph, true, false)
	require.NoError(t, err)

	outFs := afero.NewMemMapFs()
	require.NoError(t, datapack.Write(outFs, "/out", "mcfd", files, 48, "debug build"))

	exists, err := afero.Exists(outFs, "/out/pack.mcmeta")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(outFs, "/out/data/minecraft/tags/functions/load.json")
	require.NoError(t, err)
	assert.True(t, exists)
}
