package lsp

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/langhost/langhost/internal/config"
	"github.com/langhost/langhost/internal/logging"
)

// ProjectContext answers whether a project is active and where it lives.
type ProjectContext interface {
	// ActivePath returns the active project path, or "" when no project is
	// open.
	ActivePath() string
}

// Manager supervises one client per configured language. All state lives in
// the manager instance itself; operations on different languages may run
// concurrently, operations on the same language are serialized through its
// record.
type Manager struct {
	mu      sync.RWMutex
	records map[string]*clientRecord

	pluginsMu sync.RWMutex
	plugins   map[string]NotifyFunc

	factory    Factory
	projects   ProjectContext
	dataDir    string
	suppressed bool
	ports      *portAllocator
}

// ManagerOption configures the manager.
type ManagerOption func(*Manager)

// WithProjects sets the project context consulted for root paths.
func WithProjects(projects ProjectContext) ManagerOption {
	return func(m *Manager) {
		m.projects = projects
	}
}

// WithDataDir sets the manager-owned storage directory.
func WithDataDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.dataDir = dir
	}
}

// WithStartupSuppressed disables all client starts. Used on CI machines
// where server processes must not be spawned.
func WithStartupSuppressed(suppressed bool) ManagerOption {
	return func(m *Manager) {
		m.suppressed = suppressed
	}
}

// NewManager creates a manager with a Stopped record for every configured
// language. No clients are started.
func NewManager(factory Factory, servers map[string]config.ServerConfig, opts ...ManagerOption) *Manager {
	m := &Manager{
		records: make(map[string]*clientRecord),
		plugins: make(map[string]NotifyFunc),
		factory: factory,
		ports:   newPortAllocator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	for language, cfg := range servers {
		m.records[language] = newClientRecord(language, cfg)
	}
	return m
}

func (m *Manager) record(language string) *clientRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[language]
}

// addRecord creates a Stopped record for a newly configured language.
func (m *Manager) addRecord(language string, cfg config.ServerConfig) *clientRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[language]; ok {
		return rec
	}
	rec := newClientRecord(language, cfg)
	m.records[language] = rec
	return rec
}

// Languages returns the known languages in sorted order.
func (m *Manager) Languages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	langs := make([]string, 0, len(m.records))
	for language := range m.records {
		langs = append(langs, language)
	}
	sort.Strings(langs)
	return langs
}

// Status returns the client status for a language. Unknown languages report
// Stopped.
func (m *Manager) Status(language string) Status {
	rec := m.record(language)
	if rec == nil {
		return StatusStopped
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.status
}

// Start starts the client for a language. It reports whether a transition
// happened: false for unknown languages, suppressed startup, or a client
// that is already Running. A failed start leaves the language Stopped.
func (m *Manager) Start(language string) (bool, error) {
	rec := m.record(language)
	if rec == nil {
		logging.Debug("No server configured for language, ignoring start", "language", language)
		return false, nil
	}
	if m.suppressed {
		logging.Debug("Client startup suppressed", "language", language)
		return false, nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return m.startLocked(rec)
}

// startLocked performs the Stopped→Running transition. Caller holds rec.mu.
func (m *Manager) startLocked(rec *clientRecord) (bool, error) {
	if rec.status == StatusRunning {
		return false, nil
	}

	cfg := rec.config
	if !cfg.External {
		// We spawn the server ourselves, so the configured port is only a
		// preference; the allocated one overwrites it.
		port, err := m.ports.Select(cfg.Port)
		if err != nil {
			return false, fmt.Errorf("start %s client: %w", rec.language, err)
		}
		cfg.Port = port
		rec.config = cfg
	}

	id := uuid.NewString()
	instance := m.factory(ClientParams{
		ID:       id,
		Language: rec.language,
		Config:   cfg,
		RootPath: m.RootPath(rec.language),
	})

	for pluginType, target := range m.pluginSnapshot() {
		instance.RegisterPluginType(pluginType, target)
	}

	logging.Info("Starting language client", "language", rec.language, "client_id", id)
	if err := instance.Start(); err != nil {
		if !cfg.External {
			m.ports.Release(cfg.Port)
		}
		return false, fmt.Errorf("start %s client: %w", rec.language, err)
	}

	rec.instance = instance
	rec.instanceID = id
	rec.status = StatusRunning
	rec.generation++

	// Drain registrations buffered while no instance existed. The record is
	// still locked, so a RegisterFile racing with the drain either lands in
	// the queue before the swap or goes to the live instance afterwards,
	// never both.
	queue := rec.queue
	rec.queue = nil
	for _, entry := range queue {
		rec.instance.RegisterFile(entry.filename, entry.target)
	}
	logging.Debug("Client running",
		"language", rec.language, "generation", rec.generation, "drained", len(queue))

	return true, nil
}

// Stop stops the client for a language. It reports whether a transition
// happened. The record always ends up Stopped, even when the collaborator's
// stop call fails or is unimplemented.
func (m *Manager) Stop(language string) bool {
	rec := m.record(language)
	if rec == nil {
		return false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return m.stopLocked(rec)
}

// stopLocked performs the Running→Stopped transition. Caller holds rec.mu.
func (m *Manager) stopLocked(rec *clientRecord) bool {
	if rec.status != StatusRunning {
		rec.status = StatusStopped
		return false
	}

	logging.Info("Stopping language client", "language", rec.language, "client_id", rec.instanceID)
	if err := rec.instance.Stop(); err != nil {
		logging.Warn("Client stop failed, discarding instance anyway",
			"language", rec.language, "client_id", rec.instanceID, "error", err)
	}
	if !rec.config.External {
		m.ports.Release(rec.config.Port)
	}

	rec.instance = nil
	rec.instanceID = ""
	rec.status = StatusStopped
	return true
}

// Restart stops and starts the client for a language with its current
// configuration, including any update applied since the last start.
func (m *Manager) Restart(language string) error {
	rec := m.record(language)
	if rec == nil {
		return nil
	}
	if m.suppressed {
		return nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	m.stopLocked(rec)
	_, err := m.startLocked(rec)
	return err
}

// ReinitializeAll re-runs the initialization handshake of every running
// client against a freshly resolved root path. Called when the active
// project path changes. Status and instances are untouched.
func (m *Manager) ReinitializeAll() {
	for _, language := range m.Languages() {
		rec := m.record(language)
		rec.mu.Lock()
		if rec.status == StatusRunning {
			folder := m.RootPath(rec.language)
			logging.Debug("Reinitializing client", "language", rec.language, "folder", folder)
			rec.instance.Reinitialize(folder)
		}
		rec.mu.Unlock()
	}
}

// Shutdown stops every known client. Safe to call when none were started.
func (m *Manager) Shutdown() {
	logging.Info("Shutting down language client manager")
	for _, language := range m.Languages() {
		m.Stop(language)
	}
}

// RegisterFile routes a file registration to the client for a language.
// Unknown languages are expected and silently ignored. While no instance
// exists the registration is queued and replayed, in order, on the next
// start.
func (m *Manager) RegisterFile(language, filename string, target NotifyFunc) {
	rec := m.record(language)
	if rec == nil {
		return
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.instance == nil {
		rec.queue = append(rec.queue, queuedFile{filename: filename, target: target})
		return
	}
	rec.instance.RegisterFile(filename, target)
}

// SendRequest forwards a protocol request to a running client. Unlike file
// registrations, requests are never buffered: with no running client the
// call is a silent no-op.
func (m *Manager) SendRequest(language, kind string, params map[string]any) {
	rec := m.record(language)
	if rec == nil {
		return
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.status != StatusRunning {
		return
	}
	rec.instance.PerformRequest(kind, params)
}

// RegisterPluginType records a consumer plugin capability to replay into
// every future client instance. Already-running instances are not updated.
func (m *Manager) RegisterPluginType(pluginType string, target NotifyFunc) {
	m.pluginsMu.Lock()
	m.plugins[pluginType] = target
	m.pluginsMu.Unlock()
}

func (m *Manager) pluginSnapshot() map[string]NotifyFunc {
	m.pluginsMu.RLock()
	defer m.pluginsMu.RUnlock()
	return maps.Clone(m.plugins)
}
