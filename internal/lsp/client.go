// Package lsp supervises per-language protocol client connections. It owns
// the full lifecycle of each client: configuration resolution, startup, live
// reconfiguration, request dispatch and shutdown. Callers never need to know
// whether a client exists yet; work submitted early is queued and replayed.
package lsp

import "github.com/langhost/langhost/internal/config"

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mock_lsp

// NotifyFunc receives server notifications for a registered file or plugin.
type NotifyFunc func(params map[string]any)

// Client is the per-language connection object that speaks the wire protocol
// to one server instance. The manager treats it as an opaque capability set;
// process spawning, framing and the handshake live behind it. Stop may be a
// placeholder the implementation does not support; the manager transitions
// to Stopped regardless.
type Client interface {
	// Start launches the session. The manager marks the client Running only
	// after Start returns nil.
	Start() error

	// Stop tears the session down. Fire-and-forget: errors are logged, never
	// propagated.
	Stop() error

	// RegisterFile makes the server track filename and routes its
	// notifications to target.
	RegisterFile(filename string, target NotifyFunc)

	// RegisterPluginType attaches a consumer plugin capability. Called once
	// per registered plugin right after construction.
	RegisterPluginType(pluginType string, target NotifyFunc)

	// PerformRequest sends a protocol request of the given kind.
	PerformRequest(kind string, params map[string]any)

	// SendConfiguration pushes refreshed per-plugin settings to the live
	// server without a restart.
	SendConfiguration(pluginConfig map[string]any)

	// Reinitialize re-runs the initialization handshake against a new root
	// path. The session itself survives.
	Reinitialize(rootPath string)
}

// ClientParams carries everything a factory needs to construct a client.
type ClientParams struct {
	// ID uniquely identifies this client generation, for log correlation.
	ID       string
	Language string
	Config   config.ServerConfig
	// RootPath is the working-directory context handed to the server at
	// startup.
	RootPath string
}

// Factory constructs a client for one start attempt. Each restart goes
// through the factory again with freshly resolved parameters.
type Factory func(params ClientParams) Client
