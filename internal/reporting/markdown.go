// Package reporting renders jesthelper's structured results into
// human-readable text: markdown for MCP tool output consumed by the
// assistant, and styled console output for the CLI.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"jesthelper/internal/config"
	"jesthelper/internal/patterns"
	"jesthelper/internal/runner"
	"jesthelper/internal/style"
)

// statusLabel maps a finding status to its report line prefix.
func statusLabel(s style.Status) string {
	switch s {
	case style.StatusPass:
		return "✅ **PASS:**"
	case style.StatusWarning:
		return "⚠️ **WARN:**"
	default:
		return "❌ **FAIL:**"
	}
}

// ValidationReport renders a style validation report as markdown.
func ValidationReport(report style.Report) string {
	var sb strings.Builder

	sb.WriteString("# Test Style Validation Report\n")
	fmt.Fprintf(&sb, "**File:** %s\n\n", report.File)
	sb.WriteString("## Results\n\n")

	for _, f := range report.Findings {
		fmt.Fprintf(&sb, "%s %s", statusLabel(f.Status), f.Description)
		if f.Detail != "" {
			fmt.Fprintf(&sb, " (%s)", f.Detail)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Summary\n")
	fmt.Fprintf(&sb, "- ✅ Passed: %d\n", report.Passed)
	fmt.Fprintf(&sb, "- ❌ Failed: %d\n", report.Failed)
	fmt.Fprintf(&sb, "- ⚠️ Warnings: %d\n", report.Warned)

	sb.WriteString("\n")
	if report.Clean() {
		sb.WriteString("🎉 **Test file meets all style requirements!**\n")
	} else {
		sb.WriteString("⚠️ **Please fix the failed rules before committing.**\n")
	}

	return sb.String()
}

// StyleGuide renders the team style guide as markdown for the
// get_test_style_guide tool.
func StyleGuide(sg config.StyleGuide) string {
	var sb strings.Builder

	sb.WriteString("# Team Test Style Guide\n\n")
	sb.WriteString("**Follow these rules exactly for consistency across all developers.**\n\n")

	sb.WriteString("## Structure\n")
	fmt.Fprintf(&sb, "- **Test Structure:** `%s`\n", sg.TestStructure)
	fmt.Fprintf(&sb, "- **it() Naming:** `%s` (e.g., `it('should render button')`)\n", sg.ItNaming)
	fmt.Fprintf(&sb, "- **describe() Naming:** `%s`\n", sg.DescribeNaming)

	sb.WriteString("\n## Code Organization\n")
	fmt.Fprintf(&sb, "- **Test Arrangement:** `%s`\n", sg.Arrangement)
	fmt.Fprintf(&sb, "- **Use AAA Comments:** `%t`\n", sg.AAAComments)
	fmt.Fprintf(&sb, "- **Imports Order:** `%s`\n", strings.Join(sg.ImportsOrder, " → "))
	fmt.Fprintf(&sb, "- **Mock Location:** `%s`\n", sg.MockLocation)

	sb.WriteString("\n## Test Quality\n")
	fmt.Fprintf(&sb, "- **Assertions per Test:** `%s`\n", sg.AssertionsPerTest)
	fmt.Fprintf(&sb, "- **Required Edge Cases:** `%s`\n", strings.Join(sg.RequiredEdgeCases, ", "))

	sb.WriteString("\n## Example Naming\n")
	sb.WriteString("```javascript\n")
	sb.WriteString(`// CORRECT
describe('Button', () => {
  it('should render with default props', () => { ... });
  it('should call onClick when clicked', () => { ... });
});

// INCORRECT
describe('Button tests', () => {
  it('renders', () => { ... });
  test('disabled', () => { ... });
});
`)
	sb.WriteString("```\n")

	if len(sg.CustomRules) > 0 {
		sb.WriteString("\n## Custom Team Rules\n")
		for _, rule := range sg.CustomRules {
			fmt.Fprintf(&sb, "- %s\n", rule)
		}
	}

	return sb.String()
}

// TemplateEnvelope wraps a rendered template with its usage header.
func TemplateEnvelope(templateType, componentName, body string) string {
	var sb strings.Builder

	title := strings.ToUpper(strings.ReplaceAll(templateType, "_", " "))
	fmt.Fprintf(&sb, "# Test Template: %s\n\n", title)
	sb.WriteString("**Use this exact structure for consistency.**\n")
	if componentName == "" {
		componentName = "[Replace with actual name]"
	}
	fmt.Fprintf(&sb, "**Component/Function:** %s\n\n---\n\n", componentName)
	sb.WriteString(body)

	return sb.String()
}

// Analysis renders a pattern analysis as markdown for the
// analyze_test_patterns tool.
func Analysis(a patterns.Analysis) string {
	var sb strings.Builder

	sb.WriteString("# Test Pattern Analysis\n\n")
	sb.WriteString("**Follow these patterns exactly when writing tests for this codebase.**\n\n")

	fmt.Fprintf(&sb, "## Files Analyzed: %d\n", len(a.FilesAnalyzed))
	for _, f := range a.FilesAnalyzed {
		fmt.Fprintf(&sb, "  - `%s`\n", f)
	}

	sb.WriteString("\n## Test Structure\n")
	structure := strings.Join(a.Structures, " / ")
	if structure == "" {
		structure = "Unknown"
	}
	fmt.Fprintf(&sb, "- **Pattern Used:** `%s`\n", structure)
	fmt.Fprintf(&sb, "- **Uses AAA Comments:** `%t`\n", a.UsesAAAComments)
	fmt.Fprintf(&sb, "- **Uses beforeEach:** `%t`\n", a.UsesBeforeEach)
	fmt.Fprintf(&sb, "- **Uses afterEach:** `%t`\n", a.UsesAfterEach)

	sb.WriteString("\n## Naming Conventions\n")
	sb.WriteString("**describe() names used:**\n")
	for _, name := range a.DescribeNames {
		fmt.Fprintf(&sb, "  - `%s`\n", name)
	}
	sb.WriteString("\n**it()/test() names used:**\n")
	for _, name := range a.ItNames {
		fmt.Fprintf(&sb, "  - `%s`\n", name)
	}

	sb.WriteString("\n## Import Patterns\n")
	sb.WriteString("**Libraries used:**\n")
	for _, lib := range a.Libraries {
		fmt.Fprintf(&sb, "  - `%s`\n", lib)
	}
	fmt.Fprintf(&sb, "\n**Common utilities:** `%s`\n", strings.Join(a.Utilities, ", "))

	if a.ExampleImports != "" {
		sb.WriteString("\n**Example import block:**\n```typescript\n")
		sb.WriteString(a.ExampleImports)
		sb.WriteString("\n```\n")
	}

	sb.WriteString("\n## Mocking Patterns\n")
	for _, m := range a.MockingPatterns {
		fmt.Fprintf(&sb, "  - `%s`\n", m)
	}

	sb.WriteString("\n## Assertion Patterns\n")
	for _, p := range a.AssertionPatterns {
		fmt.Fprintf(&sb, "  - `%s`\n", p)
	}

	if a.ExampleIt != "" {
		sb.WriteString("\n## Real Example: it() block from codebase\n```typescript\n")
		sb.WriteString(a.ExampleIt)
		sb.WriteString("\n```\n")
	}

	return sb.String()
}

// RunResult renders a Jest run outcome for the run_tests tool.
func RunResult(result runner.Result) string {
	var sb strings.Builder

	if result.Passed {
		sb.WriteString("✅ All tests passed!\n\n")
	} else {
		sb.WriteString("❌ Some tests failed!\n\n")
	}

	fmt.Fprintf(&sb, "**Command:** `%s`\n", strings.Join(result.Command, " "))
	fmt.Fprintf(&sb, "**Duration:** %v\n\n", result.Duration.Round(time.Millisecond))

	if result.Output != "" {
		sb.WriteString("```\n")
		sb.WriteString(result.Output)
		sb.WriteString("\n```\n")
	}

	return sb.String()
}

// TestFileList renders the find_test_files result.
func TestFileList(files []string) string {
	if len(files) == 0 {
		return "No test files found."
	}
	return fmt.Sprintf("Found %d test files:\n%s", len(files), strings.Join(files, "\n"))
}

// SourceCandidates renders the find_source_for_test result.
func SourceCandidates(testPath string, candidates []string) string {
	switch len(candidates) {
	case 0:
		return fmt.Sprintf("Could not find a source file for %s.", testPath)
	case 1:
		return fmt.Sprintf("Source file: %s", candidates[0])
	default:
		return "Multiple candidates found:\n" + strings.Join(candidates, "\n")
	}
}

const exampleSnippetMaxLines = 60

// ExampleTests renders real snippets from existing test files for the
// get_example_tests tool. Large files are cut down to their first
// describe block.
func ExampleTests(samples []patterns.Sample) string {
	if len(samples) == 0 {
		return "No existing test files found. Use get_test_template instead for canonical examples."
	}

	var sb strings.Builder
	sb.WriteString("# Real Examples From Your Codebase\n\n")
	sb.WriteString("**Follow these patterns exactly when writing new tests.**\n\n")

	for _, sample := range samples {
		fmt.Fprintf(&sb, "## Example: `%s`\n\n```typescript\n", sample.Path)
		sb.WriteString(snippet(sample.Content))
		sb.WriteString("\n```\n\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// snippet returns the whole file when short, otherwise its first
// describe block truncated to a readable length.
func snippet(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= 80 {
		return strings.TrimRight(content, "\n")
	}

	var kept []string
	braces := 0
	inDescribe := false
	for _, line := range lines {
		if !inDescribe && strings.Contains(line, "describe(") {
			inDescribe = true
		}
		if !inDescribe {
			continue
		}

		kept = append(kept, line)
		braces += strings.Count(line, "{") - strings.Count(line, "}")

		if braces <= 0 && len(kept) > 5 {
			break
		}
		if len(kept) >= exampleSnippetMaxLines {
			kept = append(kept, "  // ... more tests ...", "});")
			break
		}
	}

	if len(kept) == 0 {
		kept = lines[:exampleSnippetMaxLines]
	}
	return strings.Join(kept, "\n")
}
