package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/logging"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logging.New("deafening", "")
	assert.Error(t, err)
}

func TestNew_WritesToRequestedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcfd.log")

	log, err := logging.New("info", path)
	require.NoError(t, err)

	log.Info().Msg("hello")

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hello")
}

func TestNew_AppliesRequestedLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcfd.log")

	log, err := logging.New("warn", path)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}
