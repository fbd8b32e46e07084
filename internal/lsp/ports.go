package lsp

import (
	"errors"
	"fmt"
	"net"
	"sync"
)

// ErrNoFreePort is returned when no listen port could be allocated for a
// locally spawned server. The affected start attempt fails; other languages
// are unaffected.
var ErrNoFreePort = errors.New("no free port available")

// portAllocator hands out TCP ports for servers we spawn ourselves. A port
// claimed for one language is never handed to another concurrently starting
// client until it is released again on stop.
type portAllocator struct {
	mu      sync.Mutex
	claimed map[int]struct{}
}

func newPortAllocator() *portAllocator {
	return &portAllocator{claimed: make(map[int]struct{})}
}

// Select returns a free port, preferring the configured one and scanning
// upward from it when taken. With preferred <= 0 the kernel picks an
// ephemeral port.
func (a *portAllocator) Select(preferred int) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if preferred > 0 {
		for port := preferred; port < preferred+128 && port < 65536; port++ {
			if _, taken := a.claimed[port]; taken {
				continue
			}
			if portFree(port) {
				a.claimed[port] = struct{}{}
				return port, nil
			}
		}
		return 0, fmt.Errorf("%w near %d", ErrNoFreePort, preferred)
	}

	// Let the kernel pick; retry the unlikely case that it hands back a port
	// we already claimed but haven't bound yet.
	for attempt := 0; attempt < 8; attempt++ {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNoFreePort, err)
		}
		port := l.Addr().(*net.TCPAddr).Port
		l.Close()
		if _, taken := a.claimed[port]; taken {
			continue
		}
		a.claimed[port] = struct{}{}
		return port, nil
	}
	return 0, ErrNoFreePort
}

// Release returns a port to the pool once its client stopped.
func (a *portAllocator) Release(port int) {
	a.mu.Lock()
	delete(a.claimed, port)
	a.mu.Unlock()
}

func portFree(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	l.Close()
	return true
}
