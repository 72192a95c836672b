package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToml(t *testing.T) {
	src := `# service config
port = 8080

[owner]
name = "Tom"
`
	doc, err := ParseToml(strings.NewReader(src))
	require.NoError(t, err)

	port, ok := Get(doc, "port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), MustInt(port))

	name, ok := GetUntyped(doc, "owner", "name")
	require.True(t, ok)
	assert.Equal(t, "Tom", name)

	_, ok = Get(doc, "owner", "missing")
	assert.False(t, ok)

	assert.Equal(t, src, doc.String())
}

func TestParseTomlError(t *testing.T) {
	_, err := ParseToml(strings.NewReader("a ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml:1:")
}
