package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSelfTest(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	assert.Zero(t, RunSelfTest(), "built-in vectors must all pass")
}
