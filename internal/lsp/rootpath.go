package lsp

import (
	"os"
	"path/filepath"

	"github.com/langhost/langhost/internal/logging"
)

// Name of the stable empty directory handed to the Python server when no
// project is open.
const pythonRootDirName = "lsp_root_path"

// RootPath resolves the working-directory context to hand a server at
// startup or reinitialization.
//
// This is the active project path when one exists. Without a project most
// languages get the current working directory (or home). Python is the
// exception: its server introspects everything under the root, so pointing
// it at home or a large cwd makes completions crawl. It gets a stable empty
// directory inside our data directory instead, created lazily.
func (m *Manager) RootPath(language string) string {
	if m.projects != nil {
		if path := m.projects.ActivePath(); path != "" {
			return path
		}
	}

	if language == "python" {
		path := filepath.Join(m.dataDir, pythonRootDirName)
		if err := os.MkdirAll(path, 0o755); err != nil {
			logging.Warn("Failed to create root path directory, falling back",
				"language", language, "path", path, "error", err)
			return cwdOrHome()
		}
		return path
	}

	return cwdOrHome()
}

func cwdOrHome() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
