package config

import (
	"testing"
)

func TestIsKnownLanguage(t *testing.T) {
	tests := []struct {
		language string
		want     bool
	}{
		{"python", true},
		{"Python", true},
		{"JAVASCRIPT", true},
		{"cpp", true},
		{"cobol", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsKnownLanguage(tt.language); got != tt.want {
			t.Errorf("IsKnownLanguage(%q) = %v, want %v", tt.language, got, tt.want)
		}
	}
}

func TestValidateDropsUnsupportedLanguages(t *testing.T) {
	cfg = &Config{
		Servers: map[string]ServerConfig{
			"python": {Cmd: "pyls", Host: "127.0.0.1"},
			"cobol":  {Cmd: "cobol-ls"},
		},
	}
	defer func() { cfg = nil }()

	if err := Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	if _, ok := cfg.Servers["cobol"]; ok {
		t.Error("expected unsupported language entry to be removed")
	}
	if _, ok := cfg.Servers["python"]; !ok {
		t.Error("expected supported language entry to survive")
	}
}

func TestValidateMarksCommandlessServersExternal(t *testing.T) {
	cfg = &Config{
		Servers: map[string]ServerConfig{
			"rust": {Host: "10.0.0.5", Port: 9257},
		},
	}
	defer func() { cfg = nil }()

	if err := Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	if !cfg.Servers["rust"].External {
		t.Error("expected server without a command to be marked external")
	}
}

func TestStartupSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		ci       string
		override string
		want     bool
	}{
		{name: "not on CI", ci: "", override: "", want: false},
		{name: "CI without override", ci: "true", override: "", want: true},
		{name: "CI with override", ci: "true", override: "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("LANGHOST_USE_SERVERS", tt.override)
			if got := StartupSuppressed(); got != tt.want {
				t.Errorf("StartupSuppressed() = %v, want %v", got, tt.want)
			}
		})
	}
}
