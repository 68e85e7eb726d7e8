package style

// Status is the outcome of evaluating one rule.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
)

// Finding is the outcome of evaluating one rule against one file.
// Detail carries diagnostic text, currently only for rules whose
// pattern failed to compile.
type Finding struct {
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Detail      string `json:"detail,omitempty"`
}

// Report aggregates all findings for one validation call. It is
// derived entirely from its findings and never mutated after
// construction.
type Report struct {
	File     string    `json:"file"`
	Findings []Finding `json:"findings"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Warned   int       `json:"warned"`
}

// Clean reports whether no rule produced a hard failure. Warnings do
// not block; what counts as overall success beyond that is up to the
// caller.
func (r Report) Clean() bool {
	return r.Failed == 0
}
