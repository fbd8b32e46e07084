package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestPythonConfigurationDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	server := PythonConfiguration()

	if server.Cmd != defaultPythonCmd {
		t.Errorf("Cmd = %q, want %q", server.Cmd, defaultPythonCmd)
	}
	if server.Host != defaultPythonHost {
		t.Errorf("Host = %q, want %q", server.Host, defaultPythonHost)
	}
	if server.Port != defaultPythonPort {
		t.Errorf("Port = %d, want %d", server.Port, defaultPythonPort)
	}
	if server.External {
		t.Error("localhost server must not be marked external")
	}
	if len(server.Args) == 0 {
		t.Error("localhost server must carry launch arguments")
	}

	pyls, ok := server.Configurations["pyls"].(map[string]any)
	if !ok {
		t.Fatal("missing pyls configuration document")
	}
	plugins, ok := pyls["plugins"].(map[string]any)
	if !ok {
		t.Fatal("missing plugins section")
	}
	for _, plugin := range []string{"pycodestyle", "pyflakes", "pydocstyle", "jedi_completion"} {
		if _, ok := plugins[plugin]; !ok {
			t.Errorf("missing %s plugin settings", plugin)
		}
	}
}

func TestPythonConfigurationRemoteHostIsExternal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("python.advanced.host", "10.0.0.5")
	viper.Set("python.advanced.port", 9001)

	server := PythonConfiguration()

	if !server.External {
		t.Error("remote host must be marked external")
	}
	if server.Args != nil {
		t.Errorf("external server must not carry launch arguments, got %v", server.Args)
	}
	if server.Host != "10.0.0.5" || server.Port != 9001 {
		t.Errorf("endpoint = %s:%d, want 10.0.0.5:9001", server.Host, server.Port)
	}
}

func TestPythonConfigurationPluginOptions(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("python.pycodestyle.ignore", "E501, W605 ,")
	viper.Set("python.pycodestyle.max_line_length", 100)
	viper.Set("python.pyflakes.enabled", false)

	server := PythonConfiguration()

	plugins := server.Configurations["pyls"].(map[string]any)["plugins"].(map[string]any)

	pycodestyle := plugins["pycodestyle"].(map[string]any)
	ignore := pycodestyle["ignore"].([]string)
	if len(ignore) != 2 || ignore[0] != "E501" || ignore[1] != "W605" {
		t.Errorf("ignore = %v, want [E501 W605]", ignore)
	}
	if pycodestyle["maxLineLength"] != 100 {
		t.Errorf("maxLineLength = %v, want 100", pycodestyle["maxLineLength"])
	}

	pyflakes := plugins["pyflakes"].(map[string]any)
	if pyflakes["enabled"] != false {
		t.Error("pyflakes should be disabled")
	}
}

func TestSplitOption(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tests := []struct {
		value string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"", nil},
		{",,", nil},
	}

	for _, tt := range tests {
		viper.Set("test.option", tt.value)
		got := splitOption("test.option")
		if len(got) != len(tt.want) {
			t.Errorf("splitOption(%q) = %v, want %v", tt.value, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitOption(%q) = %v, want %v", tt.value, got, tt.want)
				break
			}
		}
	}
}
