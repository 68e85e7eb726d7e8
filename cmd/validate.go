package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jesthelper/internal/config"
	"jesthelper/internal/project"
	"jesthelper/internal/reporting"
	"jesthelper/internal/style"
)

var validateProjectRoot string

// validateCmd checks a test file against the team's style rules from
// the command line, without going through an assistant. Useful in
// pre-commit hooks and CI.
var validateCmd = &cobra.Command{
	Use:   "validate <test-file>",
	Short: "Validate a Jest test file against the team's style rules",
	Long: `Validates a single test file against the configured style rules and
prints a report. The exit code is non-zero when any rule fails, so the
command can gate commits or CI runs. Warnings do not affect the exit
code.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	root, err := project.ResolveRoot(validateProjectRoot)
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

	path := args[0]
	text, err := proj.ReadFile(path)
	if err != nil {
		return err
	}

	report := style.Validate(path, text, cfg.RuleSet())
	fmt.Fprintln(cmd.OutOrStdout(), reporting.ConsoleReport(report))

	if !report.Clean() {
		return fmt.Errorf("%d style rule(s) failed", report.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateProjectRoot, "project-root", "", "Root of the JavaScript/TypeScript project (default: $PROJECT_ROOT or the current directory)")
}
