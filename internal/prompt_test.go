package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMasterLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline terminated", "password\n", "password"},
		{"crlf terminated", "password\r\n", "password"},
		{"no trailing newline", "password", "password"},
		{"only first line", "first\nsecond\n", "first"},
		{"interior spaces kept", "  pass word  \n", "  pass word  "},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadMasterLine(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
