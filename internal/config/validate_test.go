package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/config"
	"github.com/go-mcfd/mcfd/internal/diagnostics"
)

func validOptions() config.Options {
	return config.Options{
		Input:     "in",
		Output:    "out",
		Namespace: "mcfd",
		LogLevel:  "info",
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, config.Validate(validOptions()))
}

func TestValidate_RejectsLongNamespace(t *testing.T) {
	opts := validOptions()
	opts.Namespace = "toolongns"
	err := config.Validate(opts)
	require.Error(t, err)
	var ce *diagnostics.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "namespace", ce.Field)
}

func TestValidate_RejectsIllegalCharacters(t *testing.T) {
	opts := validOptions()
	opts.Namespace = "MCFD"
	err := config.Validate(opts)
	require.Error(t, err)
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	opts := validOptions()
	opts.LogLevel = "verbose"
	err := config.Validate(opts)
	require.Error(t, err)
}

func TestValidate_RequiresInputAndOutput(t *testing.T) {
	opts := validOptions()
	opts.Input = ""
	require.Error(t, config.Validate(opts))

	opts = validOptions()
	opts.Output = ""
	require.Error(t, config.Validate(opts))
}
