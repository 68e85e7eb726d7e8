package style

import (
	"fmt"
	"regexp"
)

// Validate evaluates every rule in the rule set against the given
// test file text and returns an ordered report. It is a pure function
// of its inputs: no state is kept between calls and identical inputs
// yield identical reports.
//
// A rule whose pattern does not compile degrades to a failing finding
// with the compile error in Detail; it does not abort evaluation of
// the remaining rules.
func Validate(file, text string, rs RuleSet) Report {
	report := Report{
		File:     file,
		Findings: make([]Finding, 0, rs.Len()),
	}

	for _, rule := range rs.Rules() {
		finding := evaluate(rule, text)
		report.Findings = append(report.Findings, finding)

		switch finding.Status {
		case StatusPass:
			report.Passed++
		case StatusFail:
			report.Failed++
		case StatusWarning:
			report.Warned++
		}
	}

	return report
}

// evaluate runs a single rule against the text. Patterns match
// case-insensitively across lines, mirroring how the rules are
// written in the default configuration.
func evaluate(rule Rule, text string) Finding {
	finding := Finding{
		RuleID:      rule.ID,
		Description: rule.Description,
	}

	re, err := regexp.Compile("(?im)" + rule.Pattern)
	if err != nil {
		finding.Status = StatusFail
		finding.Detail = fmt.Sprintf("invalid pattern: %v", err)
		return finding
	}

	matched := re.MatchString(text)

	passed := matched
	if rule.MustNotMatch {
		passed = !matched
	}

	switch {
	case passed:
		finding.Status = StatusPass
	case rule.Warning:
		finding.Status = StatusWarning
	default:
		finding.Status = StatusFail
	}

	return finding
}
