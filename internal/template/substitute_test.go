package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
	"github.com/go-mcfd/mcfd/internal/template"
)

func TestInstantiate_SubstitutesAllOccurrences(t *testing.T) {
	env := model.PlaceholderEnvironment{"-ns-": "debug"}
	out, err := template.Instantiate("t", "tag @s add -ns-_active\nscoreboard players set $-ns- -ns-_global 1\n", env)
	require.NoError(t, err)
	assert.Equal(t, "tag @s add debug_active\nscoreboard players set $debug debug_global 1\n", out)
}

func TestInstantiate_ReplacementIsNeverRescanned(t *testing.T) {
	env := model.PlaceholderEnvironment{
		"-a-": "-b-",
		"-b-": "unreachable",
	}
	out, err := template.Instantiate("t", "-a-", env)
	require.NoError(t, err)
	assert.Equal(t, "-b-", out)
}

func TestInstantiate_UnboundPlaceholderFails(t *testing.T) {
	_, err := template.Instantiate("set_breakpoint", "-ns-_breakpoint", model.PlaceholderEnvironment{})
	require.Error(t, err)
	var up *diagnostics.UnboundPlaceholder
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "-ns-", up.Placeholder)
	assert.Equal(t, "set_breakpoint", up.Template)
}

func TestEncodePathAndTag(t *testing.T) {
	assert.Equal(t, "mcfd/foo/bar", template.EncodePath("mcfd", "foo", "bar"))
	assert.Equal(t, "mcfd+foo+bar", template.EncodeTag("mcfd", "foo", "bar"))
	assert.Equal(t, "mcfd/bar", template.EncodePath("mcfd", "", "bar"))
}

func TestLibrary_AllRegisteredTemplatesAreNonEmpty(t *testing.T) {
	for name, body := range template.Library {
		assert.NotEmpty(t, body, "template %s has no body", name)
	}
}
