// Package project gives tool handlers a rooted view of the project
// being worked on: test file discovery, safe reads and writes, and
// Jest configuration lookup. Every path that leaves this package is
// relative to the project root unless noted otherwise.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// For mocking in tests
var osGetwd = os.Getwd

// EnvProjectRoot is the environment variable consulted when no
// explicit project root is given. This lets the same binary serve any
// project from an assistant runtime configuration.
const EnvProjectRoot = "PROJECT_ROOT"

var (
	// ErrOutsideRoot indicates a path that escapes the project root.
	ErrOutsideRoot = errors.New("path is outside the project root")
	// ErrNotTestFile indicates a write target that is not a test file.
	ErrNotTestFile = errors.New("only test files (.test.* or .spec.*) may be written")
)

// ResolveRoot determines the project root: the explicit value if
// given, else the PROJECT_ROOT environment variable, else the current
// working directory.
func ResolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if env := os.Getenv(EnvProjectRoot); env != "" {
		return filepath.Abs(env)
	}
	wd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	return wd, nil
}

// Project is a rooted handle on the project directory.
type Project struct {
	root string
}

// New creates a project handle. The root must exist and be a
// directory.
func New(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}
	return &Project{root: abs}, nil
}

// Root returns the absolute project root.
func (p *Project) Root() string {
	return p.root
}

// abs resolves a possibly relative path against the root.
func (p *Project) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.root, path)
}

// rel converts an absolute path back to a root-relative one for
// display. Falls back to the input when the path is outside the root.
func (p *Project) rel(path string) string {
	if r, err := filepath.Rel(p.root, path); err == nil && !strings.HasPrefix(r, "..") {
		return filepath.ToSlash(r)
	}
	return path
}

// withinRoot resolves path against the root and rejects anything that
// escapes it, including via ".." segments.
func (p *Project) withinRoot(path string) (string, error) {
	abs := p.abs(path)
	r, err := filepath.Rel(p.root, abs)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	return abs, nil
}

// skipDirs are directories never traversed or listed.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"coverage":     true,
	".jesthelper":  true,
}

// IsTestFile reports whether a file name follows the Jest test naming
// conventions (*.test.* / *.spec.* with a JS or TS extension).
func IsTestFile(name string) bool {
	for _, marker := range []string{".test.", ".spec."} {
		idx := strings.LastIndex(name, marker)
		if idx < 0 {
			continue
		}
		switch name[idx+len(marker):] {
		case "ts", "tsx", "js", "jsx":
			return true
		}
	}
	return false
}
