package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleToggle(t *testing.T) {
	SetColorEnabled(true)
	assert.Equal(t, Bold+Blue+"x"+Reset, Style("x", Bold, Blue))
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)
	assert.Equal(t, "x", Style("x", Bold, Blue))
	assert.False(t, ColorEnabled())

	SetColorEnabled(true)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	assert.Equal(t, make([]byte, len(b)), b)
	Wipe(nil) // must not panic
}
