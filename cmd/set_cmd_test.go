package cmd

import (
	"testing"

	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySetExistingKey(t *testing.T) {
	doc, err := toml.Parse("a = 1 # keep me\n")
	require.NoError(t, err)

	out, err := applySet(doc, "a", "2")
	require.NoError(t, err)
	assert.Equal(t, "a = 2 # keep me\n", out)
}

func TestApplySetNewKey(t *testing.T) {
	doc, err := toml.Parse("[db]\nhost = \"localhost\"\n")
	require.NoError(t, err)

	out, err := applySet(doc, "db.timeout", "30")
	require.NoError(t, err)
	assert.Equal(t, "[db]\nhost = \"localhost\"\ntimeout = 30\n", out)
}

func TestApplySetBadValue(t *testing.T) {
	doc, err := toml.Parse("a = 1\n")
	require.NoError(t, err)

	_, err = applySet(doc, "a", "not a value")
	require.Error(t, err)
}
