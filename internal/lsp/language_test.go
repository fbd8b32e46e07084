package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", "python"},
		{"/some/dir/script.PYW", "python"},
		{"app.js", "javascript"},
		{"component.jsx", "javascript"},
		{"module.ts", "typescript"},
		{"style.scss", "css"},
		{"kernel.f90", "fortran"},
		{"lib.rs", "rust"},
		{"analysis.jl", "julia"},
		{"README.md", ""},
		{"Makefile", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.path), "path %q", tt.path)
	}
}
