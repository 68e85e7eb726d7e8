package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FindTestFiles returns the root-relative paths of all test files
// under dir (root-relative; empty means the whole project), sorted
// lexically. node_modules and friends are skipped.
func (p *Project) FindTestFiles(dir string) ([]string, error) {
	start, err := p.withinRoot(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(start); err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}

	var files []string
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if IsTestFile(d.Name()) {
			files = append(files, p.rel(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// RecentTestFiles returns up to n test files ordered by modification
// time, newest first. Recently touched tests are the best sample of
// the team's current style.
func (p *Project) RecentTestFiles(n int) ([]string, error) {
	files, err := p.FindTestFiles("")
	if err != nil {
		return nil, err
	}

	type entry struct {
		path  string
		mtime time.Time
	}
	entries := make([]entry, 0, len(files))
	for _, f := range files {
		info, err := os.Stat(filepath.Join(p.root, f))
		if err != nil {
			continue
		}
		entries = append(entries, entry{path: f, mtime: info.ModTime()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].mtime.After(entries[j].mtime)
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.path
	}
	return result, nil
}

// testSuffixRe strips the test marker and extension from a test file
// name: Button.test.tsx -> Button, api.spec.js -> api.
var testSuffixRe = regexp.MustCompile(`\.(test|spec)\.(tsx?|jsx?)$`)

// sourceExtensions is the probe order for source candidates.
var sourceExtensions = []string{".tsx", ".ts", ".jsx", ".js"}

// FindSourceForTest returns the likely source file(s) for a test
// file. It probes the test's own directory and its parent (for
// __tests__ layouts) with each known extension.
func (p *Project) FindSourceForTest(testPath string) ([]string, error) {
	abs, err := p.withinRoot(testPath)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(abs)
	sourceName := testSuffixRe.ReplaceAllString(base, "")
	if sourceName == base {
		return nil, fmt.Errorf("%s does not look like a test file", testPath)
	}

	dirs := []string{filepath.Dir(abs), filepath.Dir(filepath.Dir(abs))}

	var candidates []string
	for _, ext := range sourceExtensions {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, sourceName+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				candidates = append(candidates, p.rel(candidate))
			}
		}
	}
	return candidates, nil
}

// Tree renders a depth-bounded directory listing of dir, directories
// before files, junk directories skipped.
func (p *Project) Tree(dir string, maxDepth int) (string, error) {
	start, err := p.withinRoot(dir)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		return "", fmt.Errorf("directory not found: %s", dir)
	}

	label := dir
	if label == "" {
		label = "."
	}

	var sb strings.Builder
	sb.WriteString(filepath.ToSlash(label) + "/\n")
	if err := p.writeTree(&sb, start, "", 0, maxDepth); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (p *Project) writeTree(sb *strings.Builder, dir, prefix string, depth, maxDepth int) error {
	if depth >= maxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var kept []fs.DirEntry
	for _, e := range entries {
		if skipDirs[e.Name()] {
			continue
		}
		kept = append(kept, e)
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return kept[i].Name() < kept[j].Name()
	})

	for i, e := range kept {
		last := i == len(kept)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		sb.WriteString(prefix + connector + e.Name() + "\n")

		if e.IsDir() {
			if err := p.writeTree(sb, filepath.Join(dir, e.Name()), childPrefix, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}

// jestConfigFiles in probe order.
var jestConfigFiles = []string{
	"jest.config.js",
	"jest.config.ts",
	"jest.config.json",
	"jest.config.mjs",
}

// JestConfig locates the project's Jest configuration. It returns the
// name of the file the config came from and its content; when the
// config lives under the "jest" key of package.json, that fragment is
// returned re-indented. An absent config is not an error: both return
// values are empty.
func (p *Project) JestConfig() (name, content string, err error) {
	for _, candidate := range jestConfigFiles {
		path := filepath.Join(p.root, candidate)
		data, err := os.ReadFile(path)
		if err == nil {
			return candidate, string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", "", fmt.Errorf("reading %s: %w", candidate, err)
		}
	}

	pkgPath := filepath.Join(p.root, "package.json")
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("reading package.json: %w", err)
	}

	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkg); err != nil {
		// A broken package.json is the project's problem, not ours.
		return "", "", nil
	}
	fragment, ok := pkg["jest"]
	if !ok {
		return "", "", nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, fragment, "", "  "); err != nil {
		return "package.json", string(fragment), nil
	}
	return "package.json", pretty.String(), nil
}
