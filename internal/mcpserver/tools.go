package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tools returns the full tool surface with handlers attached. The
// grouping mirrors how the assistant uses them: read, analyze, run,
// write, then team-consistency tools.
func (s *Server) Tools() []server.ServerTool {
	var tools []server.ServerTool

	tools = append(tools, s.readingTools()...)
	tools = append(tools, s.runningTools()...)
	tools = append(tools, s.writingTools()...)
	tools = append(tools, s.consistencyTools()...)

	return tools
}

func (s *Server) readingTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("find_test_files",
				mcp.WithDescription("Find all Jest test files in the project"),
				mcp.WithString("directory",
					mcp.Description("Subdirectory to search in, relative to the project root; empty searches the entire project"),
				),
			),
			Handler: s.handleFindTestFiles,
		},
		{
			Tool: mcp.NewTool("read_file",
				mcp.WithDescription("Read a file from the project"),
				mcp.WithString("file_path",
					mcp.Required(),
					mcp.Description("Path to the file, relative to the project root or absolute"),
				),
			),
			Handler: s.handleReadFile,
		},
		{
			Tool: mcp.NewTool("find_source_for_test",
				mcp.WithDescription("Find the source file that a test file is testing"),
				mcp.WithString("test_file_path",
					mcp.Required(),
					mcp.Description("Path to the test file"),
				),
			),
			Handler: s.handleFindSourceForTest,
		},
		{
			Tool: mcp.NewTool("analyze_test_patterns",
				mcp.WithDescription("Deeply analyze existing tests to understand the testing patterns used in this codebase; use this before writing tests to replicate the exact local style"),
				mcp.WithNumber("sample_count",
					mcp.Description("Number of most recently modified test files to sample (default 5)"),
				),
			),
			Handler: s.handleAnalyzeTestPatterns,
		},
		{
			Tool: mcp.NewTool("get_example_tests",
				mcp.WithDescription("Get real test code snippets from the project's existing tests"),
				mcp.WithNumber("count",
					mcp.Description("Number of example test files to extract snippets from (default 2)"),
				),
			),
			Handler: s.handleGetExampleTests,
		},
		{
			Tool: mcp.NewTool("get_jest_config",
				mcp.WithDescription("Get the Jest configuration for the project"),
			),
			Handler: s.handleGetJestConfig,
		},
		{
			Tool: mcp.NewTool("list_project_structure",
				mcp.WithDescription("List the project structure to understand the codebase layout"),
				mcp.WithString("directory",
					mcp.Description("Starting directory (default \"src\")"),
				),
				mcp.WithNumber("max_depth",
					mcp.Description("Maximum depth to traverse (default 3)"),
				),
			),
			Handler: s.handleListProjectStructure,
		},
	}
}

func (s *Server) runningTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("run_tests",
				mcp.WithDescription("Run Jest tests and return passes, failures and error messages"),
				mcp.WithString("test_path",
					mcp.Description("Specific test file or directory to run"),
				),
				mcp.WithString("test_name_pattern",
					mcp.Description("Only run tests whose name matches this pattern"),
				),
				mcp.WithBoolean("coverage",
					mcp.Description("Include a coverage report"),
				),
				mcp.WithBoolean("watch",
					mcp.Description("Run in watch mode (not supported over MCP; always refused)"),
				),
			),
			Handler: s.handleRunTests,
		},
		{
			Tool: mcp.NewTool("run_single_test",
				mcp.WithDescription("Run a single test file with detailed output"),
				mcp.WithString("test_file",
					mcp.Required(),
					mcp.Description("Path to the test file"),
				),
				mcp.WithString("test_name",
					mcp.Description("Specific test name to run"),
				),
			),
			Handler: s.handleRunSingleTest,
		},
	}
}

func (s *Server) writingTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("write_test_file",
				mcp.WithDescription("Write a test file; only .test.* and .spec.* files inside the project are allowed"),
				mcp.WithString("file_path",
					mcp.Required(),
					mcp.Description("Path where to write the test, relative to the project root"),
				),
				mcp.WithString("content",
					mcp.Required(),
					mcp.Description("The test file content"),
				),
			),
			Handler: s.handleWriteTestFile,
		},
		{
			Tool: mcp.NewTool("update_test_section",
				mcp.WithDescription("Update a specific section of a test file by exact-match replacement"),
				mcp.WithString("file_path",
					mcp.Required(),
					mcp.Description("Path to the test file"),
				),
				mcp.WithString("old_content",
					mcp.Required(),
					mcp.Description("The exact content to replace"),
				),
				mcp.WithString("new_content",
					mcp.Required(),
					mcp.Description("The new content"),
				),
			),
			Handler: s.handleUpdateTestSection,
		},
	}
}

func (s *Server) consistencyTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_test_style_guide",
				mcp.WithDescription("Get the team's official test writing guidelines; always call this before writing any test"),
			),
			Handler: s.handleGetTestStyleGuide,
		},
		{
			Tool: mcp.NewTool("get_test_template",
				mcp.WithDescription("Get a canonical test template for a specific type of code"),
				mcp.WithString("template_type",
					mcp.Required(),
					mcp.Description("Type of template: react_component, hook, utility_function, api_service, or a team-defined type"),
				),
				mcp.WithString("component_name",
					mcp.Description("Name of the component or function to test"),
				),
			),
			Handler: s.handleGetTestTemplate,
		},
		{
			Tool: mcp.NewTool("validate_test_style",
				mcp.WithDescription("Validate that a test file follows the team's style rules; use this after writing a test"),
				mcp.WithString("test_file_path",
					mcp.Required(),
					mcp.Description("Path to the test file to validate"),
				),
			),
			Handler: s.handleValidateTestStyle,
		},
		{
			Tool: mcp.NewTool("init_style_config",
				mcp.WithDescription("Initialize a .jesthelper/config.yaml file so the team can customize its test standards"),
			),
			Handler: s.handleInitStyleConfig,
		},
	}
}
