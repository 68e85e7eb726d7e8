package config

import (
	"jesthelper/internal/style"
)

// Config is the top-level configuration structure for jesthelper.
type Config struct {
	StyleGuide StyleGuide        `yaml:"styleGuide"`
	Templates  map[string]string `yaml:"templates,omitempty"`
	Rules      []style.Rule      `yaml:"rules,omitempty"`
}

// StyleGuide describes the team's test writing conventions. The
// fields are free-form prose rendered into the style guide tool
// output; they do not drive validation directly (the rules do).
type StyleGuide struct {
	TestStructure     string   `yaml:"testStructure,omitempty"`     // e.g. "describe + it"
	ItNaming          string   `yaml:"itNaming,omitempty"`          // e.g. "should + verb"
	DescribeNaming    string   `yaml:"describeNaming,omitempty"`    // e.g. "component/function name"
	Arrangement       string   `yaml:"arrangement,omitempty"`       // e.g. "AAA (Arrange-Act-Assert)"
	AAAComments       bool     `yaml:"aaaComments,omitempty"`       // whether // Arrange etc. comments are expected
	ImportsOrder      []string `yaml:"importsOrder,omitempty"`      // import group ordering
	MockLocation      string   `yaml:"mockLocation,omitempty"`      // where mocks live in the file
	AssertionsPerTest string   `yaml:"assertionsPerTest,omitempty"` // e.g. "1-3 related assertions"
	RequiredEdgeCases []string `yaml:"requiredEdgeCases,omitempty"` // edge cases every test file should cover
	CustomRules       []string `yaml:"customRules,omitempty"`       // free-form team guidelines
}

// RuleSet builds the effective rule set for validation: built-in
// structural rules followed by the configured user rules.
func (c Config) RuleSet() style.RuleSet {
	return style.NewRuleSet(c.Rules)
}
