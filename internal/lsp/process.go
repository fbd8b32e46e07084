package lsp

import (
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/langhost/langhost/internal/logging"
)

// ProcessClient owns the OS process side of a language server connection:
// it spawns the configured command for non-external servers and kills it on
// stop, or probes the endpoint for external ones. The wire session itself
// (framing, handshake, request dispatch) is the embedding application's
// collaborator; the protocol entry points below are capabilities this
// implementation does not carry and they log at debug level only.
type ProcessClient struct {
	params ClientParams

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewProcessClient is a Factory producing process-supervising clients.
func NewProcessClient(params ClientParams) Client {
	return &ProcessClient{params: params}
}

func (c *ProcessClient) Start() error {
	cfg := c.params.Config

	if cfg.External {
		// Someone else owns the process; just check the endpoint answers.
		addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		conn, err := net.DialTimeout("tcp", addr, 3*time.Second)
		if err != nil {
			return fmt.Errorf("external server %s unreachable: %w", addr, err)
		}
		conn.Close()
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd != nil {
		return nil
	}

	args := expandArgs(cfg.Args, cfg.Host, cfg.Port)
	cmd := exec.Command(cfg.Cmd, args...)
	cmd.Dir = c.params.RootPath
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s server: %w", c.params.Language, err)
	}
	c.cmd = cmd

	go func() {
		defer logging.RecoverPanic("server-"+c.params.Language, nil)
		err := cmd.Wait()
		logging.Debug("Server process exited",
			"language", c.params.Language, "client_id", c.params.ID, "error", err)
	}()

	return nil
}

func (c *ProcessClient) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd == nil || c.cmd.Process == nil {
		return nil
	}
	err := c.cmd.Process.Kill()
	c.cmd = nil
	return err
}

func (c *ProcessClient) RegisterFile(filename string, target NotifyFunc) {
	logging.Debug("Register file", "language", c.params.Language, "file", filename)
}

func (c *ProcessClient) RegisterPluginType(pluginType string, target NotifyFunc) {
	logging.Debug("Register plugin type", "language", c.params.Language, "plugin", pluginType)
}

func (c *ProcessClient) PerformRequest(kind string, params map[string]any) {
	logging.Debug("Dropping request without wire session", "language", c.params.Language, "kind", kind)
}

func (c *ProcessClient) SendConfiguration(pluginConfig map[string]any) {
	logging.Debug("Dropping configuration without wire session", "language", c.params.Language)
}

func (c *ProcessClient) Reinitialize(rootPath string) {
	logging.Debug("Reinitialize", "language", c.params.Language, "folder", rootPath)
}

// expandArgs substitutes the {host} and {port} launch-argument placeholders
// with the resolved endpoint.
func expandArgs(args []string, host string, port int) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		arg = strings.ReplaceAll(arg, "{host}", host)
		arg = strings.ReplaceAll(arg, "{port}", strconv.Itoa(port))
		out[i] = arg
	}
	return out
}
