package compiler_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/compiler"
	"github.com/go-mcfd/mcfd/internal/config"
)

func TestCompile_ProducesDebugDatapack(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/pack.mcmeta",
		[]byte(`{"pack":{"pack_format":48,"description":"test fixture"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/data/demo/functions/main.mcfunction",
		[]byte("# breakpoint\nfunction demo:helper\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/data/demo/functions/helper.mcfunction",
		[]byte("say hi\n"), 0o644))

	opts := config.Options{
		Input:     "/src",
		Output:    "/out",
		Namespace: "mcfd",
		LogLevel:  "info",
	}

	result, err := compiler.Compile(fs, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Collector.Len())

	exists, err := afero.Exists(fs, "/out/pack.mcmeta")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs, "/out/data/debug/functions/demo/main.mcfunction")
	require.NoError(t, err)
	assert.True(t, exists, "a breakpoint-gated dispatcher must exist under the debug namespace")

	exists, err = afero.Exists(fs, "/out/data/demo/functions/main.mcfunction")
	require.NoError(t, err)
	assert.False(t, exists, "without --shadow nothing should be written back under the original namespace")
}

func TestCompile_ShadowForwardsOriginalNamespaceToDebugDispatcher(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/pack.mcmeta",
		[]byte(`{"pack":{"pack_format":48,"description":"test fixture"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/data/demo/functions/main.mcfunction",
		[]byte("# breakpoint\nfunction demo:helper\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/data/demo/functions/helper.mcfunction",
		[]byte("say hi\n"), 0o644))

	opts := config.Options{
		Input:     "/src",
		Output:    "/out",
		Namespace: "mcfd",
		LogLevel:  "info",
		Shadow:    true,
	}

	result, err := compiler.Compile(fs, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Collector.Len())

	body, err := afero.ReadFile(fs, "/out/data/demo/functions/main.mcfunction")
	require.NoError(t, err)
	assert.Equal(t, "function debug:demo/main\n", string(body), "shadow file must be a one-line trampoline, not the raw original source")
}

func TestCompile_ReportsInvalidCommandsWithoutAborting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/pack.mcmeta",
		[]byte(`{"pack":{"pack_format":48,"description":"test fixture"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/data/demo/functions/main.mcfunction",
		[]byte("function demo\n"), 0o644))

	opts := config.Options{
		Input:     "/src",
		Output:    "/out",
		Namespace: "mcfd",
		LogLevel:  "info",
	}

	result, err := compiler.Compile(fs, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Greater(t, result.Collector.Len(), 0)
}

func TestCompile_MissingInputIsAnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := config.Options{
		Input:     "/nowhere",
		Output:    "/out",
		Namespace: "mcfd",
		LogLevel:  "info",
	}

	_, err := compiler.Compile(fs, opts, zerolog.Nop())
	assert.Error(t, err)
}
