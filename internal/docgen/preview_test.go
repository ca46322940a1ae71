package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const previewFragment = "# Commands\n\n- **claim**: Claim a chunk\n   - **force**: Force claim\n"

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML([]byte(previewFragment))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<h1 id="commands">Commands</h1>`)
	assert.Contains(t, html, "<strong>claim</strong>: Claim a chunk")
	assert.Contains(t, html, "<strong>force</strong>: Force claim")
}

func TestRenderTerminal(t *testing.T) {
	out, err := RenderTerminal([]byte(previewFragment), TerminalOptions{Width: 80, Style: "notty"})
	require.NoError(t, err)
	assert.Contains(t, out, "claim")
	assert.Contains(t, out, "Force claim")
}
