package lsp

import (
	"path/filepath"
	"strings"
)

// DetectLanguage maps a filename to the language identifier its server is
// registered under, or "" for file types without server support.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".c", ".h":
		return "c"
	case ".cpp", ".cxx", ".cc", ".c++", ".hpp", ".hxx":
		return "cpp"
	case ".css", ".less", ".sass", ".scss":
		return "css"
	case ".f", ".f77", ".f90", ".f95", ".f03":
		return "fortran"
	case ".go":
		return "go"
	case ".html", ".htm":
		return "html"
	case ".java":
		return "java"
	case ".js", ".mjs", ".cjs", ".jsx":
		return "javascript"
	case ".json":
		return "json"
	case ".jl":
		return "julia"
	case ".py", ".pyw":
		return "python"
	case ".r":
		return "r"
	case ".rs":
		return "rust"
	case ".ts", ".tsx", ".mts", ".cts":
		return "typescript"
	default:
		return ""
	}
}
