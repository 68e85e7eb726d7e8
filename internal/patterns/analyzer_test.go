package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const componentTest = `import React from 'react';
import { render, screen } from '@testing-library/react';
import userEvent from '@testing-library/user-event';
import { Button } from './Button';

describe('Button', () => {
  beforeEach(() => {
    jest.clearAllMocks();
  });

  it('should render with default props', () => {
    // Arrange
    const props = {};

    // Act
    render(<Button {...props} />);

    // Assert
    expect(screen.getByRole('button')).toBeInTheDocument();
  });

  it('should call onClick when clicked', async () => {
    const mockHandler = jest.fn();
    render(<Button onClick={mockHandler} />);
    await userEvent.click(screen.getByRole('button'));
    expect(mockHandler).toHaveBeenCalledTimes(1);
  });
});
`

const serviceTest = `import { fetchUser } from './api';

jest.mock('./httpClient');

describe('fetchUser', () => {
  it('should return data on success', async () => {
    httpClient.get.mockResolvedValue({ data: 'u' });
    const result = await fetchUser();
    expect(result).toEqual({ data: 'u' });
  });
});

test('standalone style also appears', () => {
  expect(1).toBe(1);
});
`

func TestAnalyzeExtractsStructureAndNaming(t *testing.T) {
	a := Analyze([]Sample{
		{Path: "src/Button.test.tsx", Content: componentTest},
		{Path: "src/api.test.ts", Content: serviceTest},
	})

	assert.Equal(t, []string{"src/Button.test.tsx", "src/api.test.ts"}, a.FilesAnalyzed)
	assert.Contains(t, a.Structures, "describe + it")

	assert.Contains(t, a.DescribeNames, "Button")
	assert.Contains(t, a.DescribeNames, "fetchUser")
	assert.Contains(t, a.ItNames, "should render with default props")
	assert.Contains(t, a.ItNames, "standalone style also appears")

	assert.True(t, a.UsesAAAComments)
	assert.True(t, a.UsesBeforeEach)
	assert.False(t, a.UsesAfterEach)
}

func TestAnalyzeDetectsLibrariesAndIdioms(t *testing.T) {
	a := Analyze([]Sample{
		{Path: "src/Button.test.tsx", Content: componentTest},
		{Path: "src/api.test.ts", Content: serviceTest},
	})

	assert.Contains(t, a.Libraries, "@testing-library/react")
	assert.Contains(t, a.Libraries, "@testing-library/user-event")
	assert.Contains(t, a.Utilities, "render")
	assert.Contains(t, a.Utilities, "screen")

	assert.Contains(t, a.MockingPatterns, "jest.fn() - function mocks")
	assert.Contains(t, a.MockingPatterns, "jest.mock() - module mocking")
	assert.Contains(t, a.MockingPatterns, "mockResolvedValue() - async mocks")

	assert.Contains(t, a.AssertionPatterns, "toBeInTheDocument()")
	assert.Contains(t, a.AssertionPatterns, "toEqual()")
	assert.Contains(t, a.AssertionPatterns, "toBe()")
}

func TestAnalyzeCapturesExamples(t *testing.T) {
	a := Analyze([]Sample{{Path: "src/Button.test.tsx", Content: componentTest}})

	require.NotEmpty(t, a.ExampleImports)
	assert.Contains(t, a.ExampleImports, "@testing-library/react")

	require.NotEmpty(t, a.ExampleIt)
	assert.Contains(t, a.ExampleIt, "it('should render with default props'")
	assert.Contains(t, a.ExampleIt, "});")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := Analyze(nil)

	assert.Empty(t, a.FilesAnalyzed)
	assert.Empty(t, a.Structures)
	assert.Empty(t, a.ExampleIt)
	assert.False(t, a.UsesAAAComments)
}

func TestAnalyzeDeterministic(t *testing.T) {
	samples := []Sample{
		{Path: "a.test.ts", Content: componentTest},
		{Path: "b.test.ts", Content: serviceTest},
	}

	assert.Equal(t, Analyze(samples), Analyze(samples))
}
