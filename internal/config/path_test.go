package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("OUTGO_TEST_DIR", "/var/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain path untouched", input: "/tmp/outgo.db", want: "/tmp/outgo.db"},
		{name: "tilde prefix", input: "~/outgo.db", want: filepath.Join(home, "outgo.db")},
		{name: "bare tilde", input: "~", want: home},
		{name: "env var", input: "$OUTGO_TEST_DIR/outgo.db", want: "/var/data/outgo.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
