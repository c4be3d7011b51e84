// Package csp implements the Content-Security-Policy rule engine: a fixed,
// ordered table of pattern rules and a validator that matches them against
// raw HTML/JS/CSS text, producing located findings. Matching is textual;
// no parsing is involved.
package csp

import "regexp"

// Feature flag names recognised by the rule table. Flag state is supplied by
// the caller on every validation pass; the engine never reads ambient state.
const (
	// FlagAllowExternalResources gates the external-resource and
	// javascript-url rules. The polarity follows the original plugin's
	// csp_chromeapps setting: the gated rules fire ONLY when this flag is
	// explicitly enabled. By default they are off.
	FlagAllowExternalResources = "allowExternalResources"

	// FlagValidationEnabled is the host-level on/off switch. It is consumed
	// by the CLI layer, never checked inside the engine itself.
	FlagValidationEnabled = "validationEnabled"
)

// Rule is one declarative CSP check: a precompiled case-insensitive pattern,
// the message reported for every match, and an optional flag name gating
// whether the rule is evaluated at all.
type Rule struct {
	ID      string
	Pattern *regexp.Regexp
	Message string
	Flag    string
}

// rules is the canonical rule table. Order matters: findings are reported in
// declaration order. The table is defined once and never mutated.
//
// Every pattern carries (?i); the inline-script rule also carries (?s) so its
// dot and body classes cross line breaks.
var rules = []Rule{
	{
		// <img>/<script> src pointing at an absolute http(s) URL.
		ID:      "external-resource-src",
		Pattern: regexp.MustCompile(`(?i)<(img|script).*?\ssrc\s?=\s?["']+http[^"']*["']?`),
		Message: "External resources are not allowed",
		Flag:    FlagAllowExternalResources,
	},
	{
		// <link> href pointing at an absolute http(s) URL.
		ID:      "external-resource-link",
		Pattern: regexp.MustCompile(`(?i)<link.+?href\s?=\s?["']+http[^"']*["']?`),
		Message: "External resources are not allowed",
		Flag:    FlagAllowExternalResources,
	},
	{
		// <script> element with any non-whitespace body, across newlines.
		ID:      "inline-script",
		Pattern: regexp.MustCompile(`(?is)<script[^>]*>[^<]+?[^\s<]+?.*?</script>`),
		Message: "Inline scripts are not allowed",
	},
	{
		ID:      "string-code-eval",
		Pattern: regexp.MustCompile(`(?i)eval|new Function`),
		Message: "Code creation from strings, e.g. eval / new Function not allowed",
	},
	{
		// setTimeout called with a string literal instead of a function.
		ID:      "string-code-settimeout",
		Pattern: regexp.MustCompile(`(?i)setTimeout\s?\("[^"]*"`),
		Message: "Code creation from strings, e.g. setTimeout(\"string\") is not allowed",
	},
	{
		// Any tag carrying an inline on* event handler attribute.
		ID:      "inline-event-handler",
		Pattern: regexp.MustCompile(`(?i)<.*?\son[^>]*?>`),
		Message: "Event handlers should be added from an external src file",
	},
	{
		// CSS url() referencing an absolute or protocol-relative resource.
		ID:      "external-resource-css",
		Pattern: regexp.MustCompile(`(?i)url\("?(?:https?:)?//[^)]*\)`),
		Message: "External resources are not allowed",
		Flag:    FlagAllowExternalResources,
	},
	{
		// href with a javascript: URL.
		ID:      "javascript-href",
		Pattern: regexp.MustCompile(`(?i)<.*?href.*?javascript:.*?>`),
		Message: "Inline JavaScript calls are not allowed",
		Flag:    FlagAllowExternalResources,
	},
}

// Rules returns the rule table in declaration order. The returned slice is
// shared; callers must treat it as read-only.
func Rules() []Rule {
	return rules
}
