package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads a file. Relative paths resolve against the project
// root; absolute paths are allowed so the assistant can inspect files
// it was pointed at directly.
func (p *Project) ReadFile(path string) (string, error) {
	abs := p.abs(path)

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a file: %s", path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTestFile writes a test file, creating parent directories as
// needed. Two safety checks guard the write: the target must carry a
// test file name, and it must live inside the project root.
func (p *Project) WriteTestFile(path, content string) error {
	if !strings.Contains(path, ".test.") && !strings.Contains(path, ".spec.") {
		return fmt.Errorf("%w: %s", ErrNotTestFile, path)
	}

	abs, err := p.withinRoot(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("creating directories for %s: %w", path, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// UpdateTestSection replaces the first occurrence of oldContent in a
// test file with newContent. The old content must match exactly.
func (p *Project) UpdateTestSection(path, oldContent, newContent string) error {
	abs, err := p.withinRoot(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	content := string(data)
	if !strings.Contains(content, oldContent) {
		return fmt.Errorf("could not find the content to replace in %s; make sure it matches exactly", path)
	}

	updated := strings.Replace(content, oldContent, newContent, 1)
	if err := os.WriteFile(abs, []byte(updated), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
