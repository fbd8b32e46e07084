package lsp

import (
	"testing"

	"github.com/langhost/langhost/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandArgs(t *testing.T) {
	args := []string{"--host", "{host}", "--port", "{port}", "--tcp"}
	got := expandArgs(args, "127.0.0.1", 3501)
	assert.Equal(t, []string{"--host", "127.0.0.1", "--port", "3501", "--tcp"}, got)

	// Arguments without placeholders pass through untouched.
	assert.Equal(t, []string{"--stdio"}, expandArgs([]string{"--stdio"}, "127.0.0.1", 3501))
	assert.Empty(t, expandArgs(nil, "127.0.0.1", 3501))
}

func TestProcessClientStopWithoutStart(t *testing.T) {
	client := NewProcessClient(ClientParams{
		Language: "python",
		Config:   config.ServerConfig{Cmd: "pyls"},
	})
	require.NoError(t, client.Stop())
}

func TestProcessClientSpawnFailure(t *testing.T) {
	client := NewProcessClient(ClientParams{
		Language: "python",
		Config: config.ServerConfig{
			Cmd:  "definitely-not-a-real-server-binary",
			Host: "127.0.0.1",
			Port: 0,
		},
		RootPath: t.TempDir(),
	})
	assert.Error(t, client.Start())
}
