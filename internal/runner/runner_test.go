package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the invocation and plays back a canned response.
type fakeRunner struct {
	gotDir     string
	gotCommand []string
	output     string
	err        error
	delay      time.Duration
}

func (f *fakeRunner) Run(ctx context.Context, dir string, command []string) (string, error) {
	f.gotDir = dir
	f.gotCommand = command
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.output, f.err
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "whole suite",
			opts: Options{},
			want: []string{"npm", "test", "--", "--watchAll=false", "--verbose"},
		},
		{
			name: "single file with name pattern",
			opts: Options{TestPath: "src/Button.test.tsx", TestNamePattern: "should render"},
			want: []string{"npm", "test", "--", "src/Button.test.tsx", "-t", "should render", "--watchAll=false", "--verbose"},
		},
		{
			name: "coverage",
			opts: Options{Coverage: true},
			want: []string{"npm", "test", "--", "--coverage", "--watchAll=false", "--verbose"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildCommand(tc.opts))
		})
	}
}

func TestRunPassingSuite(t *testing.T) {
	fake := &fakeRunner{output: "Tests: 3 passed, 3 total\n"}
	r := NewWithCommandRunner("/project", fake)

	result, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, "Tests: 3 passed, 3 total", result.Output)
	assert.Equal(t, "/project", fake.gotDir)
	assert.Equal(t, "npm", fake.gotCommand[0])
}

func TestRunFailingSuiteIsNotAnError(t *testing.T) {
	fake := &fakeRunner{
		output: "Tests: 1 failed, 2 passed, 3 total\n",
		err:    errors.New("exit status 1"),
	}
	r := NewWithCommandRunner("/project", fake)

	result, err := r.Run(context.Background(), Options{TestPath: "src/Button.test.tsx"})
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Output, "1 failed")
}

func TestRunLaunchFailure(t *testing.T) {
	fake := &fakeRunner{err: errors.New("npm: command not found")}
	r := NewWithCommandRunner("/project", fake)

	_, err := r.Run(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running tests")
}

func TestRunRejectsWatchMode(t *testing.T) {
	r := NewWithCommandRunner("/project", &fakeRunner{})

	_, err := r.Run(context.Background(), Options{Watch: true})
	assert.ErrorIs(t, err, ErrWatchMode)
}

func TestRunTimeout(t *testing.T) {
	fake := &fakeRunner{delay: 50 * time.Millisecond}
	r := NewWithCommandRunner("/project", fake)
	r.timeout = 10 * time.Millisecond

	_, err := r.Run(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
