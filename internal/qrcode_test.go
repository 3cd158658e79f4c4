package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderQR(t *testing.T) {
	t.Parallel()

	out, err := RenderQR(";$C3x0VK#E`g;&_")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Half-block rendering: every line covers the same module width.
	width := len([]rune(lines[0]))
	for i, line := range lines {
		assert.Len(t, []rune(line), width, "line %d", i)
	}
	for _, line := range lines {
		for _, r := range line {
			assert.Contains(t, " ▀▄█", string(r))
		}
	}
}

func TestRenderQR_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := RenderQR("820488708921100")
	require.NoError(t, err)
	b, err := RenderQR("820488708921100")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
