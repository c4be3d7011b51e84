package csp

import "testing"

func TestRules_TableIsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for i, rule := range Rules() {
		if rule.ID == "" {
			t.Errorf("rule %d has no ID", i)
		}
		if seen[rule.ID] {
			t.Errorf("duplicate rule ID %q", rule.ID)
		}
		seen[rule.ID] = true

		if rule.Pattern == nil {
			t.Errorf("rule %q has no compiled pattern", rule.ID)
		}
		if rule.Message == "" {
			t.Errorf("rule %q has an empty message", rule.ID)
		}
	}
	if len(Rules()) != 8 {
		t.Errorf("expected 8 rules, got %d", len(Rules()))
	}
}

func TestRules_GatedRulesShareTheExternalFlag(t *testing.T) {
	gated := map[string]bool{}
	for _, rule := range Rules() {
		if rule.Flag != "" {
			if rule.Flag != FlagAllowExternalResources {
				t.Errorf("rule %q gated by unexpected flag %q", rule.ID, rule.Flag)
			}
			gated[rule.ID] = true
		}
	}
	for _, id := range []string{
		"external-resource-src",
		"external-resource-link",
		"external-resource-css",
		"javascript-href",
	} {
		if !gated[id] {
			t.Errorf("rule %q should be gated by %s", id, FlagAllowExternalResources)
		}
	}
	if len(gated) != 4 {
		t.Errorf("expected exactly 4 gated rules, got %d", len(gated))
	}
}
