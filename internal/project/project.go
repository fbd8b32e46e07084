// Package project tracks the active project context.
package project

import "sync"

// Service answers "is a project active" and "where does it live" queries.
// The zero path means no project is open.
type Service struct {
	mu   sync.RWMutex
	path string
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// ActivePath returns the active project path, or "" when none is open.
func (s *Service) ActivePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// IsActive reports whether a project is currently open.
func (s *Service) IsActive() bool {
	return s.ActivePath() != ""
}

// SetActive switches the active project. Callers are responsible for
// reinitializing clients that depend on the project root afterwards.
func (s *Service) SetActive(path string) {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
}
