package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabets(t *testing.T) {
	t.Parallel()

	require.Len(t, AlphabetNormal, 94)
	require.Len(t, AlphabetAlphanumeric, 62)
	require.Len(t, AlphabetNumeric, 10)

	// Index 0 is the least-significant-digit symbol.
	assert.Equal(t, byte('!'), AlphabetNormal[0])
	assert.Equal(t, byte('~'), AlphabetNormal[93])
	assert.Equal(t, byte('0'), AlphabetAlphanumeric[0])
	assert.Equal(t, byte('A'), AlphabetAlphanumeric[10])
	assert.Equal(t, byte('a'), AlphabetAlphanumeric[36])

	// Ascending codepoint order, no duplicates.
	for i := 1; i < len(AlphabetNormal); i++ {
		assert.Less(t, AlphabetNormal[i-1], AlphabetNormal[i])
	}
}

func TestKindAlphabet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AlphabetNormal, KindNormal.Alphabet())
	assert.Equal(t, AlphabetAlphanumeric, KindAlphanumeric.Alphabet())
	assert.Equal(t, AlphabetNumeric, KindNumeric.Alphabet())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"normal", KindNormal, true},
		{"", KindNormal, true},
		{"Alphanumeric", KindAlphanumeric, true},
		{"alnum", KindAlphanumeric, true},
		{" numeric ", KindNumeric, true},
		{"num", KindNumeric, true},
		{"base64", KindNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseKind(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseKind(%q)", tt.in)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "normal", KindNormal.String())
	assert.Equal(t, "alphanumeric", KindAlphanumeric.String())
	assert.Equal(t, "numeric", KindNumeric.String())
}
