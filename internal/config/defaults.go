package config

import (
	"jesthelper/internal/style"
)

// Template catalog keys. These are the canonical template types the
// get_test_template tool accepts.
const (
	TemplateReactComponent  = "react_component"
	TemplateHook            = "hook"
	TemplateUtilityFunction = "utility_function"
	TemplateAPIService      = "api_service"
)

// DefaultConfig returns the configuration used when no user or
// project config file exists. The templates and rules mirror the
// conventions the style guide describes, so a test generated from a
// default template validates cleanly against the default rules.
func DefaultConfig() Config {
	return Config{
		StyleGuide: StyleGuide{
			TestStructure:     "describe + it",
			ItNaming:          "should + verb",
			DescribeNaming:    "component/function name",
			Arrangement:       "AAA (Arrange-Act-Assert)",
			AAAComments:       true,
			ImportsOrder:      []string{"react", "testing-library", "components", "utils", "mocks"},
			MockLocation:      "top of file after imports",
			AssertionsPerTest: "1-3 related assertions",
			RequiredEdgeCases: []string{"null/undefined", "empty values", "error states"},
		},
		Templates: map[string]string{
			TemplateReactComponent:  reactComponentTemplate,
			TemplateHook:            hookTemplate,
			TemplateUtilityFunction: utilityFunctionTemplate,
			TemplateAPIService:      apiServiceTemplate,
		},
		Rules: []style.Rule{
			{
				ID:          "it_uses_should",
				Description: "it() should start with 'should'",
				Pattern:     `it\s*\(\s*['"]should`,
			},
			{
				ID:          "has_aaa_comments",
				Description: "Test should have AAA comments",
				Pattern:     `//\s*(Arrange|Act|Assert)`,
				Warning:     true,
			},
			{
				ID:          "has_edge_cases",
				Description: "Should test edge cases",
				Pattern:     `(null|undefined|empty|error)`,
				Warning:     true,
			},
		},
	}
}

const reactComponentTemplate = `import React from 'react';
import { render, screen } from '@testing-library/react';
import userEvent from '@testing-library/user-event';
import { ComponentName } from './ComponentName';

describe('ComponentName', () => {
  // Arrange: Common setup
  const defaultProps = {};

  describe('rendering', () => {
    it('should render without crashing', () => {
      // Arrange
      const props = { ...defaultProps };

      // Act
      render(<ComponentName {...props} />);

      // Assert
      expect(screen.getByRole('...')).toBeInTheDocument();
    });
  });

  describe('interactions', () => {
    it('should handle click events', async () => {
      // Arrange
      const user = userEvent.setup();
      const mockHandler = jest.fn();
      render(<ComponentName onClick={mockHandler} />);

      // Act
      await user.click(screen.getByRole('button'));

      // Assert
      expect(mockHandler).toHaveBeenCalledTimes(1);
    });
  });

  describe('edge cases', () => {
    it('should handle empty props gracefully', () => {
      // Arrange & Act
      render(<ComponentName />);

      // Assert
      expect(screen.queryByRole('alert')).not.toBeInTheDocument();
    });
  });
});`

const hookTemplate = `import { renderHook, act } from '@testing-library/react';
import { useHookName } from './useHookName';

describe('useHookName', () => {
  describe('initialization', () => {
    it('should return initial state', () => {
      // Arrange & Act
      const { result } = renderHook(() => useHookName());

      // Assert
      expect(result.current.value).toBe(initialValue);
    });
  });

  describe('actions', () => {
    it('should update state when action is called', () => {
      // Arrange
      const { result } = renderHook(() => useHookName());

      // Act
      act(() => {
        result.current.doAction();
      });

      // Assert
      expect(result.current.value).toBe(expectedValue);
    });
  });
});`

const utilityFunctionTemplate = `import { functionName } from './utils';

describe('functionName', () => {
  describe('valid inputs', () => {
    it('should return expected result for valid input', () => {
      // Arrange
      const input = validInput;

      // Act
      const result = functionName(input);

      // Assert
      expect(result).toBe(expectedOutput);
    });
  });

  describe('edge cases', () => {
    it('should handle null input', () => {
      // Arrange & Act & Assert
      expect(functionName(null)).toBe(defaultValue);
    });

    it('should handle undefined input', () => {
      // Arrange & Act & Assert
      expect(functionName(undefined)).toBe(defaultValue);
    });

    it('should handle empty input', () => {
      // Arrange & Act & Assert
      expect(functionName('')).toBe(defaultValue);
    });
  });

  describe('error cases', () => {
    it('should throw for invalid input', () => {
      // Arrange & Act & Assert
      expect(() => functionName(invalidInput)).toThrow();
    });
  });
});`

const apiServiceTemplate = `import { apiFunction } from './api';

// Mock dependencies
jest.mock('./httpClient');

describe('apiFunction', () => {
  // Arrange: Common setup
  beforeEach(() => {
    jest.clearAllMocks();
  });

  describe('successful requests', () => {
    it('should return data on success', async () => {
      // Arrange
      const mockResponse = { data: 'test' };
      httpClient.get.mockResolvedValue(mockResponse);

      // Act
      const result = await apiFunction();

      // Assert
      expect(result).toEqual(mockResponse);
      expect(httpClient.get).toHaveBeenCalledWith('/endpoint');
    });
  });

  describe('error handling', () => {
    it('should handle network errors', async () => {
      // Arrange
      httpClient.get.mockRejectedValue(new Error('Network error'));

      // Act & Assert
      await expect(apiFunction()).rejects.toThrow('Network error');
    });
  });
});`
