// Package mcpserver exposes jesthelper's operations as MCP tools so
// an AI assistant runtime can call them. The server is stateless
// between calls: every tool invocation works from the project files
// and the configuration loaded at startup.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"jesthelper/internal/config"
	"jesthelper/internal/project"
	"jesthelper/internal/runner"
	"jesthelper/pkg/logging"
)

const serverName = "jesthelper"

// Transport names accepted by Config.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config configures the MCP server.
type Config struct {
	Version   string
	Transport string // "stdio" (default) or "sse"
	Host      string
	Port      int
}

// Server hosts the jesthelper MCP tools over stdio or SSE.
type Server struct {
	config  Config
	project *project.Project
	cfg     config.Config
	runner  *runner.Runner

	mcp *server.MCPServer
	sse *server.SSEServer
}

// New creates a server for the given project and merged
// configuration.
func New(serverConfig Config, proj *project.Project, cfg config.Config) *Server {
	if serverConfig.Transport == "" {
		serverConfig.Transport = TransportStdio
	}
	if serverConfig.Host == "" {
		serverConfig.Host = "localhost"
	}
	if serverConfig.Port == 0 {
		serverConfig.Port = 8095
	}
	if serverConfig.Version == "" {
		serverConfig.Version = "dev"
	}

	return &Server{
		config:  serverConfig,
		project: proj,
		cfg:     cfg,
		runner:  runner.New(proj.Root()),
	}
}

// Run starts the server on the configured transport and blocks until
// the transport closes or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mcpServer := server.NewMCPServer(
		serverName,
		s.config.Version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(s.Tools()...)
	s.mcp = mcpServer

	logging.Info("Server", "Serving project %s over %s", s.project.Root(), s.config.Transport)

	switch s.config.Transport {
	case TransportStdio:
		return server.ServeStdio(mcpServer)
	case TransportSSE:
		return s.runSSE(ctx)
	default:
		return fmt.Errorf("unknown transport %q", s.config.Transport)
	}
}

// runSSE serves over HTTP/SSE until the context is cancelled.
func (s *Server) runSSE(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	baseURL := fmt.Sprintf("http://%s", addr)

	s.sse = server.NewSSEServer(
		s.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.sse.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logging.Info("Server", "SSE endpoint listening on %s/sse", baseURL)

	select {
	case err := <-errCh:
		return fmt.Errorf("SSE server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.sse.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server", err, "Error shutting down SSE server")
	}
	return nil
}
