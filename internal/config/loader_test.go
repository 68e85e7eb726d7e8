package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"jesthelper/internal/style"
)

// Helper function to create a config file under dir/.jesthelper/
func writeProjectConfig(t *testing.T, root string, content Config) {
	t.Helper()
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, projectConfigDir), 0755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(root), data, 0644))
}

func withoutUserConfig(t *testing.T) {
	t.Helper()
	original := getUserConfigPath
	t.Cleanup(func() { getUserConfigPath = original })
	getUserConfigPath = func() (string, error) {
		return filepath.Join(t.TempDir(), "non-existent-config.yaml"), nil
	}
}

func TestLoadConfigDefaultOnly(t *testing.T) {
	withoutUserConfig(t)
	root := t.TempDir()

	loaded, err := LoadConfig(root)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.StyleGuide, loaded.StyleGuide)
	assert.Equal(t, defaults.Templates, loaded.Templates)
	assert.ElementsMatch(t, defaults.Rules, loaded.Rules)
}

func TestLoadConfigProjectOverride(t *testing.T) {
	withoutUserConfig(t)
	root := t.TempDir()

	writeProjectConfig(t, root, Config{
		StyleGuide: StyleGuide{
			ItNaming: "imperative verb",
		},
		Templates: map[string]string{
			"graphql_resolver": "describe('resolver', () => { it('should resolve', () => { expect(1).toBe(1); }); });",
		},
		Rules: []style.Rule{
			{ID: "no_snapshot", Description: "no snapshot tests", Pattern: `toMatchSnapshot`, MustNotMatch: true},
		},
	})

	loaded, err := LoadConfig(root)
	require.NoError(t, err)

	// Overridden scalar
	assert.Equal(t, "imperative verb", loaded.StyleGuide.ItNaming)
	// Untouched scalar keeps the default
	assert.Equal(t, "describe + it", loaded.StyleGuide.TestStructure)

	// Templates merge by key: default four plus the new one
	assert.Len(t, loaded.Templates, 5)
	assert.Contains(t, loaded.Templates, TemplateReactComponent)
	assert.Contains(t, loaded.Templates, "graphql_resolver")

	// Rules replace wholesale
	require.Len(t, loaded.Rules, 1)
	assert.Equal(t, "no_snapshot", loaded.Rules[0].ID)
}

func TestLoadConfigUserThenProjectLayering(t *testing.T) {
	root := t.TempDir()
	userDir := t.TempDir()

	original := getUserConfigPath
	t.Cleanup(func() { getUserConfigPath = original })
	userPath := filepath.Join(userDir, configFileName)
	getUserConfigPath = func() (string, error) { return userPath, nil }

	userCfg := Config{
		StyleGuide: StyleGuide{
			ItNaming:      "user naming",
			TestStructure: "user structure",
		},
	}
	data, err := yaml.Marshal(&userCfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(userPath, data, 0644))

	writeProjectConfig(t, root, Config{
		StyleGuide: StyleGuide{ItNaming: "project naming"},
	})

	loaded, err := LoadConfig(root)
	require.NoError(t, err)

	// Project wins over user, user wins over default.
	assert.Equal(t, "project naming", loaded.StyleGuide.ItNaming)
	assert.Equal(t, "user structure", loaded.StyleGuide.TestStructure)
}

func TestLoadConfigMalformedProjectConfig(t *testing.T) {
	withoutUserConfig(t)
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, projectConfigDir), 0755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(root), []byte("rules: {not: [a, sequence"), 0644))

	_, err := LoadConfig(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestWriteStarterConfig(t *testing.T) {
	withoutUserConfig(t)
	root := t.TempDir()

	path, err := WriteStarterConfig(root)
	require.NoError(t, err)
	assert.Equal(t, ProjectConfigPath(root), path)

	// The starter must load back cleanly and keep the default rules.
	loaded, err := LoadConfig(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, DefaultConfig().Rules, loaded.Rules)
	assert.NotEmpty(t, loaded.StyleGuide.CustomRules)

	// Second init refuses to overwrite.
	_, err = WriteStarterConfig(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRuleSetAppendsUserRulesAfterBuiltins(t *testing.T) {
	cfg := DefaultConfig()
	rs := cfg.RuleSet()

	builtins := style.BuiltinRules()
	require.Equal(t, len(builtins)+len(cfg.Rules), rs.Len())

	rules := rs.Rules()
	for i, b := range builtins {
		assert.Equal(t, b.ID, rules[i].ID)
	}
	assert.Equal(t, cfg.Rules[0].ID, rules[len(builtins)].ID)
}
