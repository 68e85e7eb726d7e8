package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jesthelper/internal/config"
	"jesthelper/internal/mcpserver"
	"jesthelper/internal/project"
	"jesthelper/pkg/logging"
)

var (
	serveTransport   string
	serveHost        string
	servePort        int
	serveProjectRoot string
	serveDebug       bool
)

// serveCmd starts the MCP server. This is the main command of
// jesthelper: an AI assistant connects to it over stdio or SSE and
// uses the exposed tools to read, write, validate and run Jest tests.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the jesthelper MCP server",
	Long: `Starts the jesthelper MCP server for the given project.

Transports:
  stdio (default) - for assistants that spawn jesthelper as a subprocess
  sse             - HTTP server with /sse and /message endpoints

The project root is taken from --project-root, the PROJECT_ROOT
environment variable, or the current working directory, in that order.
Configuration is layered: built-in defaults, then
~/.config/jesthelper/config.yaml, then <project>/.jesthelper/config.yaml.

All logs go to stderr; on the stdio transport stdout carries nothing
but protocol frames.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if serveDebug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	root, err := project.ResolveRoot(serveProjectRoot)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}
	proj, err := project.New(root)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(proj.Root())
	if err != nil {
		return err
	}

	srv := mcpserver.New(mcpserver.Config{
		Version:   rootCmd.Version,
		Transport: serveTransport,
		Host:      serveHost,
		Port:      servePort,
	}, proj, cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return srv.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", mcpserver.TransportStdio, "Transport to serve on (stdio or sse)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind the SSE server to")
	serveCmd.Flags().IntVar(&servePort, "port", 8095, "Port to bind the SSE server to")
	serveCmd.Flags().StringVar(&serveProjectRoot, "project-root", "", "Root of the JavaScript/TypeScript project (default: $PROJECT_ROOT or the current directory)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}
