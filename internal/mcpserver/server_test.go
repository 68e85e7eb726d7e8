package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jesthelper/internal/config"
	"jesthelper/internal/project"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	proj, err := project.New(t.TempDir())
	require.NoError(t, err)
	return New(Config{Version: "test"}, proj, config.DefaultConfig())
}

func writeProjectFile(t *testing.T, s *Server, rel, content string) {
	t.Helper()
	abs := filepath.Join(s.project.Root(), rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}

func TestNewDefaults(t *testing.T) {
	proj, err := project.New(t.TempDir())
	require.NoError(t, err)

	s := New(Config{}, proj, config.DefaultConfig())

	assert.Equal(t, TransportStdio, s.config.Transport)
	assert.Equal(t, "localhost", s.config.Host)
	assert.Equal(t, 8095, s.config.Port)
	assert.Equal(t, "dev", s.config.Version)
	assert.NotNil(t, s.runner)
}

func TestToolSurface(t *testing.T) {
	s := newTestServer(t)
	tools := s.Tools()

	names := make(map[string]bool)
	for _, tool := range tools {
		require.NotNil(t, tool.Handler, "tool %s has no handler", tool.Tool.Name)
		names[tool.Tool.Name] = true
	}

	expected := []string{
		// Reading tools
		"find_test_files",
		"read_file",
		"find_source_for_test",
		"analyze_test_patterns",
		"get_example_tests",
		"get_jest_config",
		"list_project_structure",
		// Running tools
		"run_tests",
		"run_single_test",
		// Writing tools
		"write_test_file",
		"update_test_section",
		// Consistency tools
		"get_test_style_guide",
		"get_test_template",
		"validate_test_style",
		"init_style_config",
	}
	for _, name := range expected {
		assert.True(t, names[name], "missing tool %s", name)
	}
	assert.Len(t, tools, len(expected))
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	proj, err := project.New(t.TempDir())
	require.NoError(t, err)

	s := New(Config{Transport: "carrier-pigeon"}, proj, config.DefaultConfig())

	err = s.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}
