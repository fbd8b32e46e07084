package lsp

import (
	"testing"

	"github.com/langhost/langhost/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRestartRequired(t *testing.T) {
	base := config.ServerConfig{
		Cmd:      "pyls",
		Args:     []string{"--host", "{host}", "--port", "{port}", "--tcp"},
		Host:     "127.0.0.1",
		Port:     2087,
		External: false,
		Configurations: map[string]any{
			"pyls": map[string]any{"plugins": map[string]any{}},
		},
	}

	tests := []struct {
		name   string
		mutate func(*config.ServerConfig)
		want   bool
	}{
		{
			name:   "identical",
			mutate: func(c *config.ServerConfig) {},
			want:   false,
		},
		{
			name: "plugin settings only",
			mutate: func(c *config.ServerConfig) {
				c.Configurations = map[string]any{
					"pyls": map[string]any{"plugins": map[string]any{"pyflakes": map[string]any{"enabled": false}}},
				}
			},
			want: false,
		},
		{
			name:   "command changed",
			mutate: func(c *config.ServerConfig) { c.Cmd = "pylsp" },
			want:   true,
		},
		{
			name:   "arguments changed",
			mutate: func(c *config.ServerConfig) { c.Args = []string{"--stdio"} },
			want:   true,
		},
		{
			name:   "host changed",
			mutate: func(c *config.ServerConfig) { c.Host = "10.0.0.5" },
			want:   true,
		},
		{
			name:   "port changed",
			mutate: func(c *config.ServerConfig) { c.Port = 3000 },
			want:   true,
		},
		{
			name:   "external flag changed",
			mutate: func(c *config.ServerConfig) { c.External = true },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := base
			tt.mutate(&updated)
			assert.Equal(t, tt.want, restartRequired(base, updated))
		})
	}
}
