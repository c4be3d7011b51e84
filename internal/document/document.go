// Package document acquires the texts the validator runs over, either from
// the local filesystem or over HTTP.
package document

import (
	"fmt"
	"mime"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cspscan/cspscan/pkg/csp"
	"github.com/cspscan/cspscan/pkg/shared/files"
)

// Document is one unit of text to validate, tagged with where it came from
// and what syntax it appears to be.
type Document struct {
	// Target is the file path or URL the text was read from.
	Target string
	// Syntax is the detected syntax name ("html", "javascript", "css"),
	// or "" when unknown.
	Syntax string
	Text   string
}

// Eligible reports whether the document's syntax is one the validator
// applies to.
func (d *Document) Eligible() bool {
	return csp.EligibleSyntax(d.Syntax)
}

// LoadFile reads a document from disk. The path may start with ~.
func LoadFile(path string) (*Document, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{
		Target: path,
		Syntax: csp.DetectSyntax(path),
		Text:   string(data),
	}, nil
}

// Fetch retrieves a document over HTTP(S). The syntax comes from the
// response Content-Type, falling back to the URL path's extension.
func Fetch(client *resty.Client, url string) (*Document, error) {
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %q: status %s", url, resp.Status())
	}

	syntax := syntaxFromContentType(resp.Header().Get("Content-Type"))
	if syntax == "" {
		syntax = csp.DetectSyntax(url)
	}

	return &Document{
		Target: url,
		Syntax: syntax,
		Text:   string(resp.Body()),
	}, nil
}

// syntaxFromContentType maps a Content-Type header to a syntax name.
func syntaxFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch {
	case strings.Contains(mediaType, "html"):
		return "html"
	case strings.Contains(mediaType, "javascript"):
		return "javascript"
	case strings.Contains(mediaType, "css"):
		return "css"
	}
	return ""
}
