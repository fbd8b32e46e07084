package lsp

import (
	"sync"

	"github.com/langhost/langhost/internal/config"
)

// Status of a per-language client record.
type Status string

const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
)

// queuedFile is a file registration submitted while no client instance
// existed, buffered until the next Stopped→Running transition.
type queuedFile struct {
	filename string
	target   NotifyFunc
}

// clientRecord holds the per-language state the manager reconciles against.
// Its mutex serializes lifecycle transitions for the language; records for
// different languages are independent and may transition concurrently.
//
// Invariant: instance is non-nil iff status == StatusRunning.
type clientRecord struct {
	mu sync.Mutex

	language string
	status   Status
	config   config.ServerConfig

	// instance is the live client handle, owned exclusively by the record.
	// Created on start, discarded on stop.
	instance   Client
	instanceID string

	// queue buffers file registrations while instance is nil. Drained FIFO
	// exactly once per start; generation counts starts so a drain can never
	// be attributed to an older client.
	queue      []queuedFile
	generation uint64
}

func newClientRecord(language string, cfg config.ServerConfig) *clientRecord {
	return &clientRecord{
		language: language,
		status:   StatusStopped,
		config:   cfg,
	}
}
