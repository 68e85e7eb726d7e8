package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir    = ".config/jesthelper"
	projectConfigDir = ".jesthelper"
	configFileName   = "config.yaml"
)

// LoadConfig loads the jesthelper configuration by layering default,
// user, and project settings. projectRoot is the root of the project
// being worked on; its .jesthelper/config.yaml takes precedence over
// the user config, which takes precedence over the defaults.
//
// Missing config files are fine; a config file that exists but does
// not decode is a structural error and fails the whole load.
func LoadConfig(projectRoot string) (Config, error) {
	config := DefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; without a home dir we just skip it.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath := ProjectConfigPath(projectRoot)
	if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// ProjectConfigPath returns the path of the project-level config file
// under the given project root.
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, projectConfigDir, configFileName)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Scalar
// style guide fields override when set; templates merge by key; a
// non-empty overlay rule list replaces the base rules wholesale so a
// team can curate its own ordered list.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.StyleGuide.TestStructure != "" {
		merged.StyleGuide.TestStructure = overlay.StyleGuide.TestStructure
	}
	if overlay.StyleGuide.ItNaming != "" {
		merged.StyleGuide.ItNaming = overlay.StyleGuide.ItNaming
	}
	if overlay.StyleGuide.DescribeNaming != "" {
		merged.StyleGuide.DescribeNaming = overlay.StyleGuide.DescribeNaming
	}
	if overlay.StyleGuide.Arrangement != "" {
		merged.StyleGuide.Arrangement = overlay.StyleGuide.Arrangement
	}
	if overlay.StyleGuide.MockLocation != "" {
		merged.StyleGuide.MockLocation = overlay.StyleGuide.MockLocation
	}
	if overlay.StyleGuide.AssertionsPerTest != "" {
		merged.StyleGuide.AssertionsPerTest = overlay.StyleGuide.AssertionsPerTest
	}
	if len(overlay.StyleGuide.ImportsOrder) > 0 {
		merged.StyleGuide.ImportsOrder = overlay.StyleGuide.ImportsOrder
	}
	if len(overlay.StyleGuide.RequiredEdgeCases) > 0 {
		merged.StyleGuide.RequiredEdgeCases = overlay.StyleGuide.RequiredEdgeCases
	}
	if len(overlay.StyleGuide.CustomRules) > 0 {
		merged.StyleGuide.CustomRules = overlay.StyleGuide.CustomRules
	}

	if len(overlay.Templates) > 0 {
		templates := make(map[string]string, len(merged.Templates)+len(overlay.Templates))
		for k, v := range merged.Templates {
			templates[k] = v
		}
		for k, v := range overlay.Templates {
			templates[k] = v
		}
		merged.Templates = templates
	}

	if len(overlay.Rules) > 0 {
		merged.Rules = overlay.Rules
	}

	return merged
}

// WriteStarterConfig writes a commented starter config into the
// project so a team can customize its standards. It refuses to
// overwrite an existing file.
func WriteStarterConfig(projectRoot string) (string, error) {
	path := ProjectConfigPath(projectRoot)

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	starter := DefaultConfig()
	// Templates are long; the starter keeps the defaults implicit and
	// only spells out the parts teams usually edit.
	starter.Templates = nil
	starter.StyleGuide.CustomRules = []string{
		"Always mock API calls",
		"Use data-testid only as last resort",
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return "", fmt.Errorf("encoding starter config: %w", err)
	}

	header := []byte("# jesthelper team configuration.\n" +
		"# Commit this file so every developer (and the AI assistant)\n" +
		"# writes tests against the same standards.\n")

	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return "", fmt.Errorf("writing starter config: %w", err)
	}

	return path, nil
}
