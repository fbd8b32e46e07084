package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Hosts that mean the server process is spawned and owned by us rather than
// connected to an already-running endpoint.
var localhostAliases = []string{"127.0.0.1", "localhost"}

const (
	defaultPythonCmd  = "pyls"
	defaultPythonHost = "127.0.0.1"
	defaultPythonPort = 2087
)

// Argument template expanded by the client once the final port is known.
var pythonLaunchArgs = []string{"--host", "{host}", "--port", "{port}", "--tcp"}

func isLocalhost(host string) bool {
	for _, h := range localhostAliases {
		if host == h {
			return true
		}
	}
	return false
}

// PythonConfiguration builds the Python server configuration document from
// our preference options. Server command, host and port come from the
// advanced section; everything else lands in the opaque per-plugin settings
// blob the server consumes.
func PythonConfiguration() ServerConfig {
	viper.SetDefault("python.advanced.command_launch", defaultPythonCmd)
	viper.SetDefault("python.advanced.host", defaultPythonHost)
	viper.SetDefault("python.advanced.port", defaultPythonPort)
	viper.SetDefault("python.pycodestyle.enabled", true)
	viper.SetDefault("python.pycodestyle.max_line_length", 79)
	viper.SetDefault("python.pyflakes.enabled", true)
	viper.SetDefault("python.pydocstyle.enabled", false)
	viper.SetDefault("python.pydocstyle.convention", "numpy")
	viper.SetDefault("python.code_completion", true)
	viper.SetDefault("python.jedi_signature_help", true)

	cmd := viper.GetString("python.advanced.command_launch")
	host := viper.GetString("python.advanced.host")
	port := viper.GetInt("python.advanced.port")

	pycodestyle := map[string]any{
		"enabled":       viper.GetBool("python.pycodestyle.enabled"),
		"exclude":       splitOption("python.pycodestyle.exclude"),
		"filename":      splitOption("python.pycodestyle.filename"),
		"select":        splitOption("python.pycodestyle.select"),
		"ignore":        splitOption("python.pycodestyle.ignore"),
		"hangClosing":   false,
		"maxLineLength": viper.GetInt("python.pycodestyle.max_line_length"),
	}

	pyflakes := map[string]any{
		"enabled": viper.GetBool("python.pyflakes.enabled"),
	}

	pydocstyle := map[string]any{
		"enabled":    viper.GetBool("python.pydocstyle.enabled"),
		"convention": viper.GetString("python.pydocstyle.convention"),
		"addIgnore":  splitOption("python.pydocstyle.add_ignore"),
		"addSelect":  splitOption("python.pydocstyle.add_select"),
		"ignore":     splitOption("python.pydocstyle.ignore"),
		"select":     splitOption("python.pydocstyle.select"),
		"match":      "(?!test_).*\\.py",
		"matchDir":   "[^\\.].*",
	}

	jediCompletion := map[string]any{
		"enabled":        viper.GetBool("python.code_completion"),
		"include_params": false,
	}

	server := ServerConfig{
		Cmd:  cmd,
		Host: host,
		Port: port,
	}
	if isLocalhost(host) {
		server.Args = pythonLaunchArgs
		server.External = false
	} else {
		server.Args = nil
		server.External = true
	}

	server.Configurations = map[string]any{
		"pyls": map[string]any{
			"plugins": map[string]any{
				"pycodestyle":         pycodestyle,
				"pyflakes":            pyflakes,
				"pydocstyle":          pydocstyle,
				"jedi_completion":     jediCompletion,
				"jedi_signature_help": viper.GetBool("python.jedi_signature_help"),
				"preload": map[string]any{
					"modules": splitOption("python.preload_modules"),
				},
			},
		},
	}

	return server
}

// splitOption reads a comma-separated preference and returns its trimmed,
// non-empty entries.
func splitOption(key string) []string {
	parts := strings.Split(viper.GetString(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
