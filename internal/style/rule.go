package style

// Rule is a single named check evaluated against test file text.
// Pattern is a regular expression; it is compiled case-insensitively
// and in multiline mode at evaluation time.
type Rule struct {
	ID           string `yaml:"id"`
	Description  string `yaml:"description"`
	Pattern      string `yaml:"pattern"`
	MustNotMatch bool   `yaml:"must_not_match,omitempty"`
	Warning      bool   `yaml:"warning,omitempty"`
}

// RuleSet is the ordered collection of rules for one validation call:
// built-in structural rules first, then user-supplied rules in the
// order they were configured.
type RuleSet struct {
	rules []Rule
}

// BuiltinRules returns the structural checks that are always active.
// They are not user-removable; user rules are appended after them.
func BuiltinRules() []Rule {
	return []Rule{
		{
			ID:          "has_describe",
			Description: "Test must use describe() blocks",
			Pattern:     `describe\s*\(`,
		},
		{
			ID:          "has_it_or_test",
			Description: "Test must use it() or test()",
			Pattern:     `(it|test)\s*\(`,
		},
		{
			ID:          "has_assertions",
			Description: "Test must have assertions",
			Pattern:     `expect\s*\(`,
		},
		{
			ID:           "no_only",
			Description:  "No .only() or .skip() in tests",
			Pattern:      `\.(only|skip)\s*\(`,
			MustNotMatch: true,
		},
	}
}

// NewRuleSet builds a rule set from user rules. Built-ins come first;
// user rules that would shadow a built-in ID or an earlier user rule
// are dropped (first occurrence wins), as are rules with an empty
// pattern, which could never fail and would only inflate the counts.
func NewRuleSet(userRules []Rule) RuleSet {
	builtins := BuiltinRules()
	seen := make(map[string]bool, len(builtins)+len(userRules))
	rules := make([]Rule, 0, len(builtins)+len(userRules))

	for _, r := range builtins {
		seen[r.ID] = true
		rules = append(rules, r)
	}
	for _, r := range userRules {
		if r.Pattern == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		rules = append(rules, r)
	}

	return RuleSet{rules: rules}
}

// Rules returns the rules in evaluation order.
func (rs RuleSet) Rules() []Rule {
	return rs.rules
}

// Len returns the number of rules that will be evaluated.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}
