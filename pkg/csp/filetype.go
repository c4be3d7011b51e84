package csp

import (
	"path/filepath"
	"regexp"
	"strings"
)

// syntaxPattern mirrors the original eligibility check: any syntax name
// containing html, javascript or css is worth validating.
var syntaxPattern = regexp.MustCompile(`(?i)html|javascript|css`)

// extSyntax maps well-known file extensions to a syntax name.
var extSyntax = map[string]string{
	".html": "html",
	".htm":  "html",
	".js":   "javascript",
	".mjs":  "javascript",
	".css":  "css",
}

// EligibleSyntax reports whether a syntax name identifies a document type the
// validator applies to. The match is a case-insensitive substring check, so
// host-specific names like "HTML (Django)" qualify.
func EligibleSyntax(syntax string) bool {
	return syntaxPattern.MatchString(syntax)
}

// DetectSyntax returns the syntax name for a file path based on its
// extension, or "" when the extension is not recognised.
func DetectSyntax(path string) string {
	return extSyntax[strings.ToLower(filepath.Ext(path))]
}
