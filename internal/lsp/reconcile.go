package lsp

import (
	"slices"
	"strings"

	"github.com/langhost/langhost/internal/config"
	"github.com/langhost/langhost/internal/logging"
)

// restartRequired reports whether a configuration change can only be applied
// by recreating the client. Only the server command, arguments, host, port
// and external flag participate; per-plugin settings apply live, and any
// other field is inert.
func restartRequired(old, updated config.ServerConfig) bool {
	return old.Cmd != updated.Cmd ||
		!slices.Equal(old.Args, updated.Args) ||
		old.Host != updated.Host ||
		old.Port != updated.Port ||
		old.External != updated.External
}

// UpdateServers reconciles the record table against a refreshed server
// configuration set, typically after a preferences change.
//
// Newly configured languages get a Stopped record and are not auto-started.
// For known languages the old and new configuration are diffed: when only
// live-applicable fields changed, the new per-plugin settings are pushed to
// the running instance; when a restart-trigger field changed, a running
// client is torn down and recreated with the new configuration.
func (m *Manager) UpdateServers(servers map[string]config.ServerConfig) {
	for language, updated := range servers {
		language = strings.ToLower(language)
		if !config.IsKnownLanguage(language) {
			continue
		}

		rec := m.record(language)
		if rec == nil {
			m.addRecord(language, updated)
			continue
		}

		rec.mu.Lock()
		switch {
		case !restartRequired(rec.config, updated):
			rec.config = updated
			if rec.status == StatusRunning {
				rec.instance.SendConfiguration(updated.Configurations)
			}
		case rec.status == StatusStopped:
			// Next start picks the new configuration up.
			rec.config = updated
		default:
			logging.Info("Server configuration changed, restarting client", "language", language)
			m.stopLocked(rec)
			rec.config = updated
			if _, err := m.startLocked(rec); err != nil {
				logging.Error("Failed to restart client after configuration change",
					"language", language, "error", err)
			}
		}
		rec.mu.Unlock()
	}
}

// UpdateActiveLanguages stops every running client whose language is not in
// the active set. Languages in the set keep their current state.
func (m *Manager) UpdateActiveLanguages(active []string) {
	activeSet := make(map[string]struct{}, len(active))
	for _, language := range active {
		activeSet[strings.ToLower(language)] = struct{}{}
	}

	for _, language := range m.Languages() {
		if _, ok := activeSet[language]; ok {
			continue
		}
		m.Stop(language)
	}
}
