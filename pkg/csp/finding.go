package csp

// Span is a half-open byte range [Start, End) into the validated text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Finding is one located rule violation. Findings are created fresh on every
// validation pass and are owned by the caller of that pass.
type Finding struct {
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
	Span    Span   `json:"span"`
}

// FindingAt returns the first finding whose span contains the given offset.
// The boolean return indicates whether such a finding exists.
func FindingAt(findings []Finding, offset int) (Finding, bool) {
	for _, f := range findings {
		if f.Span.Contains(offset) {
			return f, true
		}
	}
	return Finding{}, false
}
