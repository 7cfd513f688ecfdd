package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	assert.Equal(t, []string{"config", "keys", "patterns", "picker"}, Topics())
}

func TestGet(t *testing.T) {
	body, ok := Get(" Keys ")
	require.True(t, ok)
	assert.Contains(t, body, "# Keys")
	for _, bad := range []string{"", "nope", "../docs"} {
		_, ok := Get(bad)
		assert.False(t, ok, bad)
	}
}

func TestRender(t *testing.T) {
	body, _ := Get("picker")
	out := Render(body, "light", 60)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "picker")
	assert.Empty(t, Render("  ", "dark", 60), "blank markdown")
}
