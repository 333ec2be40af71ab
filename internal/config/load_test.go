package config_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/config"
)

func newBoundCommand(t *testing.T) (*cobra.Command, *viper.Viper) {
	t.Helper()
	cmd := &cobra.Command{Use: "mcfd"}
	v := viper.New()
	config.BindFlags(cmd, v)
	require.NoError(t, cmd.Flags().Set("input", "in"))
	require.NoError(t, cmd.Flags().Set("output", "out"))
	return cmd, v
}

func TestBindFlags_LogLevelReadsBareEnvVar(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	_, v := newBoundCommand(t)

	opts, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestBindFlags_OtherFlagsStillUseMcfdPrefix(t *testing.T) {
	t.Setenv("MCFD_NAMESPACE", "other")
	_, v := newBoundCommand(t)

	opts, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "other", opts.Namespace)
}

func TestBindFlags_FlagTakesPrecedenceOverEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cmd, v := newBoundCommand(t)
	require.NoError(t, cmd.Flags().Set("log-level", "warn"))

	opts, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestBindFlags_ShadowAndAdapterDefaultFalse(t *testing.T) {
	_, v := newBoundCommand(t)

	opts, err := config.Load(v)
	require.NoError(t, err)
	assert.False(t, opts.Shadow)
	assert.False(t, opts.Adapter)
}
