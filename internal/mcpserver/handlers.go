package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"jesthelper/internal/config"
	"jesthelper/internal/patterns"
	"jesthelper/internal/reporting"
	"jesthelper/internal/runner"
	"jesthelper/internal/style"
	"jesthelper/internal/templates"
	"jesthelper/pkg/logging"
)

// optString extracts an optional string argument.
func optString(req mcp.CallToolRequest, key string) string {
	args, _ := req.Params.Arguments.(map[string]interface{})
	value, _ := args[key].(string)
	return value
}

// optInt extracts an optional numeric argument; JSON numbers arrive
// as float64.
func optInt(req mcp.CallToolRequest, key string, fallback int) int {
	args, _ := req.Params.Arguments.(map[string]interface{})
	value, ok := args[key].(float64)
	if !ok || value <= 0 {
		return fallback
	}
	return int(value)
}

// optBool extracts an optional boolean argument.
func optBool(req mcp.CallToolRequest, key string) bool {
	args, _ := req.Params.Arguments.(map[string]interface{})
	value, _ := args[key].(bool)
	return value
}

func (s *Server) handleFindTestFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := s.project.FindTestFiles(optString(req, "directory"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.TestFileList(files)), nil
}

func (s *Server) handleReadFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	content, err := s.project.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleFindSourceForTest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("test_file_path")
	if err != nil {
		return mcp.NewToolResultError("test_file_path parameter is required"), nil
	}

	candidates, err := s.project.FindSourceForTest(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.SourceCandidates(path, candidates)), nil
}

// loadSamples reads up to n recent test files into analyzer samples.
// Files that disappear between listing and reading are skipped.
func (s *Server) loadSamples(n int) ([]patterns.Sample, error) {
	files, err := s.project.RecentTestFiles(n)
	if err != nil {
		return nil, err
	}

	samples := make([]patterns.Sample, 0, len(files))
	for _, f := range files {
		content, err := s.project.ReadFile(f)
		if err != nil {
			logging.Warn("Server", "Skipping unreadable test file %s: %v", f, err)
			continue
		}
		samples = append(samples, patterns.Sample{Path: f, Content: content})
	}
	return samples, nil
}

func (s *Server) handleAnalyzeTestPatterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	samples, err := s.loadSamples(optInt(req, "sample_count", 5))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(samples) == 0 {
		return mcp.NewToolResultText("No test files found to analyze. Use get_test_template for canonical examples."), nil
	}
	return mcp.NewToolResultText(reporting.Analysis(patterns.Analyze(samples))), nil
}

func (s *Server) handleGetExampleTests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	samples, err := s.loadSamples(optInt(req, "count", 2))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.ExampleTests(samples)), nil
}

func (s *Server) handleGetJestConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, content, err := s.project.JestConfig()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if name == "" {
		return mcp.NewToolResultText("No Jest configuration file found. Using default Jest config."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %s:\n\n%s", name, content)), nil
}

func (s *Server) handleListProjectStructure(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	directory := optString(req, "directory")
	if directory == "" {
		directory = "src"
	}

	tree, err := s.project.Tree(directory, optInt(req, "max_depth", 3))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(tree), nil
}

func (s *Server) handleRunTests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := runner.Options{
		TestPath:        optString(req, "test_path"),
		TestNamePattern: optString(req, "test_name_pattern"),
		Coverage:        optBool(req, "coverage"),
		Watch:           optBool(req, "watch"),
	}

	result, err := s.runner.Run(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.RunResult(result)), nil
}

func (s *Server) handleRunSingleTest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	testFile, err := req.RequireString("test_file")
	if err != nil {
		return mcp.NewToolResultError("test_file parameter is required"), nil
	}

	result, err := s.runner.Run(ctx, runner.Options{
		TestPath:        testFile,
		TestNamePattern: optString(req, "test_name"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.RunResult(result)), nil
}

func (s *Server) handleWriteTestFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content parameter is required"), nil
	}

	if err := s.project.WriteTestFile(path, content); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	logging.Info("Server", "Wrote test file %s", path)
	return mcp.NewToolResultText(fmt.Sprintf("Successfully wrote test file: %s", path)), nil
}

func (s *Server) handleUpdateTestSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}
	oldContent, err := req.RequireString("old_content")
	if err != nil {
		return mcp.NewToolResultError("old_content parameter is required"), nil
	}
	newContent, err := req.RequireString("new_content")
	if err != nil {
		return mcp.NewToolResultError("new_content parameter is required"), nil
	}

	if err := s.project.UpdateTestSection(path, oldContent, newContent); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully updated: %s", path)), nil
}

func (s *Server) handleGetTestStyleGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(reporting.StyleGuide(s.cfg.StyleGuide)), nil
}

func (s *Server) handleGetTestTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateType, err := req.RequireString("template_type")
	if err != nil {
		return mcp.NewToolResultError("template_type parameter is required"), nil
	}
	componentName := optString(req, "component_name")

	body, err := templates.Render(s.cfg.Templates, templateType, componentName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reporting.TemplateEnvelope(templateType, componentName, body)), nil
}

func (s *Server) handleValidateTestStyle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("test_file_path")
	if err != nil {
		return mcp.NewToolResultError("test_file_path parameter is required"), nil
	}

	text, err := s.project.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := style.Validate(path, text, s.cfg.RuleSet())
	return mcp.NewToolResultText(reporting.ValidationReport(report)), nil
}

func (s *Server) handleInitStyleConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := config.WriteStarterConfig(s.project.Root())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	message := fmt.Sprintf(`Created config file: %s

This file controls how tests are written across your team.

Next steps:
1. Edit it to match your team's preferences
2. Commit it so all developers use the same config
3. Restart jesthelper to pick up the new rules`, path)
	return mcp.NewToolResultText(message), nil
}
