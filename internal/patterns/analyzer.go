// Package patterns extracts the testing conventions a team actually
// uses from its existing Jest test files. The analysis is purely
// textual: regular expressions over file content, no AST.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// Sample is one test file handed to the analyzer.
type Sample struct {
	Path    string
	Content string
}

// Analysis summarizes the patterns found across the sampled files.
// Slice fields are sorted for deterministic output.
type Analysis struct {
	FilesAnalyzed []string

	Structures      []string // e.g. "describe + it", "standalone test()"
	UsesAAAComments bool
	UsesBeforeEach  bool
	UsesAfterEach   bool

	Libraries []string // testing-library style imports seen
	Utilities []string // render, screen, waitFor, ...

	DescribeNames []string // example describe() titles
	ItNames       []string // example it()/test() titles

	MockingPatterns   []string
	AssertionPatterns []string

	ExampleImports string // first import block seen
	ExampleIt      string // first reasonably short it() block seen
}

var (
	describeNameRe = regexp.MustCompile(`describe\s*\(\s*['"]([^'"]+)['"]`)
	itNameRe       = regexp.MustCompile(`it\s*\(\s*['"]([^'"]+)['"]`)
	testNameRe     = regexp.MustCompile(`test\s*\(\s*['"]([^'"]+)['"]`)
	standaloneRe   = regexp.MustCompile(`(?m)^test\(`)
	aaaCommentRe   = regexp.MustCompile(`//\s*(Arrange|Act|Assert)`)
	itBlockRe      = regexp.MustCompile(`(?ms)(it\s*\(['"][^'"]+['"],\s*(?:async\s*)?\(\)\s*=>\s*\{.*?^\s*\}\);)`)
)

// knownLibraries maps an import marker to its display name.
var knownLibraries = []string{
	"@testing-library/react",
	"@testing-library/user-event",
	"@testing-library/jest-dom",
}

var knownUtilities = []string{
	"render", "screen", "fireEvent", "userEvent", "waitFor", "act", "within",
}

// mockingMarkers maps a content marker to the pattern it evidences.
var mockingMarkers = map[string]string{
	"jest.mock(":         "jest.mock() - module mocking",
	"jest.fn()":          "jest.fn() - function mocks",
	"jest.spyOn(":        "jest.spyOn() - spy on methods",
	"mockImplementation": "mockImplementation()",
	"mockResolvedValue":  "mockResolvedValue() - async mocks",
	"mockReturnValue":    "mockReturnValue()",
}

var assertionMarkers = map[string]string{
	"toBeInTheDocument":    "toBeInTheDocument()",
	"toHaveBeenCalledWith": "toHaveBeenCalledWith()",
	"toHaveBeenCalled":     "toHaveBeenCalled()",
	"toEqual":              "toEqual()",
	"toBe(":                "toBe()",
	"toMatchSnapshot":      "toMatchSnapshot()",
	"toThrow":              "toThrow()",
}

const (
	maxDescribeNamesPerFile = 3
	maxItNamesPerFile       = 5
	maxExampleItLength      = 800
	maxExampleImportLines   = 10
)

// Analyze inspects the given samples and returns the aggregate
// analysis. It is deterministic for a given input order.
func Analyze(samples []Sample) Analysis {
	a := Analysis{}

	structures := map[string]bool{}
	libraries := map[string]bool{}
	utilities := map[string]bool{}
	mocking := map[string]bool{}
	assertions := map[string]bool{}
	seenDescribe := map[string]bool{}
	seenIt := map[string]bool{}

	for _, sample := range samples {
		content := sample.Content
		a.FilesAnalyzed = append(a.FilesAnalyzed, sample.Path)

		if strings.Contains(content, "describe(") && strings.Contains(content, "it(") {
			structures["describe + it"] = true
		}
		if strings.Contains(content, "describe(") && strings.Contains(content, "test(") {
			structures["describe + test"] = true
		}
		if standaloneRe.MatchString(content) {
			structures["standalone test()"] = true
		}

		if aaaCommentRe.MatchString(content) {
			a.UsesAAAComments = true
		}
		if strings.Contains(content, "beforeEach(") {
			a.UsesBeforeEach = true
		}
		if strings.Contains(content, "afterEach(") {
			a.UsesAfterEach = true
		}

		for _, lib := range knownLibraries {
			if strings.Contains(content, lib) {
				libraries[lib] = true
			}
		}
		for _, util := range knownUtilities {
			if strings.Contains(content, util) {
				utilities[util] = true
			}
		}
		for marker, label := range mockingMarkers {
			if strings.Contains(content, marker) {
				mocking[label] = true
			}
		}
		for marker, label := range assertionMarkers {
			if strings.Contains(content, marker) {
				assertions[label] = true
			}
		}

		for _, m := range describeNameRe.FindAllStringSubmatch(content, maxDescribeNamesPerFile) {
			if !seenDescribe[m[1]] {
				seenDescribe[m[1]] = true
				a.DescribeNames = append(a.DescribeNames, m[1])
			}
		}
		for _, re := range []*regexp.Regexp{itNameRe, testNameRe} {
			for _, m := range re.FindAllStringSubmatch(content, maxItNamesPerFile) {
				if !seenIt[m[1]] {
					seenIt[m[1]] = true
					a.ItNames = append(a.ItNames, m[1])
				}
			}
		}

		if a.ExampleImports == "" {
			a.ExampleImports = extractImportBlock(content)
		}
		if a.ExampleIt == "" {
			if m := itBlockRe.FindStringSubmatch(content); m != nil && len(m[1]) < maxExampleItLength {
				a.ExampleIt = m[1]
			}
		}
	}

	a.Structures = sortedKeys(structures)
	a.Libraries = sortedKeys(libraries)
	a.Utilities = sortedKeys(utilities)
	a.MockingPatterns = sortedKeys(mocking)
	a.AssertionPatterns = sortedKeys(assertions)

	return a
}

// extractImportBlock returns the leading import lines of a file,
// capped at a few lines.
func extractImportBlock(content string) string {
	var imports []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import "), strings.HasPrefix(trimmed, "from "):
			imports = append(imports, line)
		case len(imports) > 0 && trimmed == "":
			continue
		case len(imports) > 0:
			if len(imports) > maxExampleImportLines {
				imports = imports[:maxExampleImportLines]
			}
			return strings.Join(imports, "\n")
		}
	}
	if len(imports) > maxExampleImportLines {
		imports = imports[:maxExampleImportLines]
	}
	return strings.Join(imports, "\n")
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
