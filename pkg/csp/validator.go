package csp

// FlagFunc reports whether a named feature flag is enabled. Unknown names
// must be answered with false, never an error.
type FlagFunc func(name string) bool

// FlagMap is a snapshot of flag state usable as a FlagFunc source.
type FlagMap map[string]bool

// Enabled reports whether the named flag is present and true.
func (m FlagMap) Enabled(name string) bool {
	return m[name]
}

// Validator applies the rule table to document text. The zero value is not
// usable; construct with NewValidator.
type Validator struct {
	rules []Rule
}

// NewValidator returns a validator over the canonical rule table.
func NewValidator() *Validator {
	return &Validator{rules: Rules()}
}

// Validate matches every active rule against text and returns all findings.
// Rules run in declaration order; within a rule, matches are reported
// first-to-last by offset, non-overlapping. A rule with a flag is evaluated
// only when enabled reports that flag true; a nil enabled func disables all
// gated rules. Overlapping findings from different rules are all kept.
//
// The call is a pure function of (text, flag state): no input is mutated and
// no state is carried between calls. Empty or non-matching text yields an
// empty slice.
func (v *Validator) Validate(text string, enabled FlagFunc) []Finding {
	findings := []Finding{}

	for _, rule := range v.rules {
		if rule.Flag != "" && (enabled == nil || !enabled(rule.Flag)) {
			continue
		}
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			findings = append(findings, Finding{
				RuleID:  rule.ID,
				Message: rule.Message,
				Span:    Span{Start: loc[0], End: loc[1]},
			})
		}
	}

	return findings
}
