package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jesthelper/internal/config"
	"jesthelper/internal/style"
)

func TestTypesSorted(t *testing.T) {
	catalog := map[string]string{"b": "x", "a": "y", "c": "z"}
	assert.Equal(t, []string{"a", "b", "c"}, Types(catalog))
}

func TestRenderSubstitutesComponentName(t *testing.T) {
	catalog := config.DefaultConfig().Templates

	body, err := Render(catalog, config.TemplateReactComponent, "LoginForm")
	require.NoError(t, err)

	assert.Contains(t, body, "describe('LoginForm'")
	assert.Contains(t, body, "import { LoginForm } from './LoginForm'")
	assert.NotContains(t, body, "ComponentName")
}

func TestRenderWithoutComponentNameKeepsPlaceholders(t *testing.T) {
	catalog := config.DefaultConfig().Templates

	body, err := Render(catalog, config.TemplateHook, "")
	require.NoError(t, err)
	assert.Contains(t, body, "useHookName")
}

func TestRenderUnknownType(t *testing.T) {
	catalog := config.DefaultConfig().Templates

	_, err := Render(catalog, "graphql_resolver", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template type")
	assert.Contains(t, err.Error(), config.TemplateAPIService)
}

func TestDefaultTemplatesValidateCleanly(t *testing.T) {
	cfg := config.DefaultConfig()
	rs := cfg.RuleSet()

	// A test generated from a default template must pass every
	// non-warning rule out of the box.
	for _, templateType := range Types(cfg.Templates) {
		t.Run(templateType, func(t *testing.T) {
			body, err := Render(cfg.Templates, templateType, "Example")
			require.NoError(t, err)

			report := style.Validate(templateType, body, rs)
			assert.Equal(t, 0, report.Failed, "findings: %+v", report.Findings)
		})
	}
}
