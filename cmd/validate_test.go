package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const passingTest = `describe('Button', () => {
  it('should render', () => {
    expect(1).toBe(1);
  });
});
`

func setupValidateProject(t *testing.T) string {
	t.Helper()

	// Keep the user config out of the picture
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}

	originalRoot := validateProjectRoot
	validateProjectRoot = root
	t.Cleanup(func() { validateProjectRoot = originalRoot })

	return root
}

func runValidateCommand(t *testing.T, args []string) (string, error) {
	t.Helper()

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	err := runValidate(cmd, args)
	return buf.String(), err
}

func TestRunValidatePassingFile(t *testing.T) {
	root := setupValidateProject(t)

	path := filepath.Join(root, "src", "Button.test.tsx")
	if err := os.WriteFile(path, []byte(passingTest), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runValidateCommand(t, []string{"src/Button.test.tsx"})
	if err != nil {
		t.Fatalf("Expected clean validation, got error: %v", err)
	}

	if !strings.Contains(output, "src/Button.test.tsx") {
		t.Errorf("Output should name the file. Got: %q", output)
	}
	if !strings.Contains(output, "meets all style requirements") {
		t.Errorf("Output should report success. Got: %q", output)
	}
}

func TestRunValidateFailingFile(t *testing.T) {
	root := setupValidateProject(t)

	path := filepath.Join(root, "src", "Bad.test.tsx")
	if err := os.WriteFile(path, []byte("it.only('x', () => {});\n"), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runValidateCommand(t, []string{"src/Bad.test.tsx"})
	if err == nil {
		t.Error("Expected error for failing validation")
	}
	if !strings.Contains(err.Error(), "style rule(s) failed") {
		t.Errorf("Expected failure summary in error, got: %v", err)
	}

	if !strings.Contains(output, "Fix the failed rules") {
		t.Errorf("Output should report the failure. Got: %q", output)
	}
}

func TestRunValidateMissingFile(t *testing.T) {
	setupValidateProject(t)

	_, err := runValidateCommand(t, []string{"src/Missing.test.tsx"})
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
