package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jesthelper/internal/config"
	"jesthelper/internal/project"
)

var configProjectRoot string

// configCmd groups the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the jesthelper configuration",
	Long: `Manage the jesthelper configuration for a project.

Available commands:
  init - write a starter .jesthelper/config.yaml into the project
  show - print the effective merged configuration`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file into the project",
	Long: `Writes a commented starter config to <project>/.jesthelper/config.yaml.
Commit the file so every developer and the AI assistant write tests
against the same standards. Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective merged configuration",
	Long: `Prints the configuration jesthelper would use for the project, after
layering defaults, the user config and the project config.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func configRoot() (string, error) {
	root, err := project.ResolveRoot(configProjectRoot)
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	proj, err := project.New(root)
	if err != nil {
		return "", err
	}
	return proj.Root(), nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	root, err := configRoot()
	if err != nil {
		return err
	}

	path, err := config.WriteStarterConfig(root)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	root, err := configRoot()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	cmd.OutOrStdout().Write(data)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configCmd.PersistentFlags().StringVar(&configProjectRoot, "project-root", "", "Root of the JavaScript/TypeScript project (default: $PROJECT_ROOT or the current directory)")
}
