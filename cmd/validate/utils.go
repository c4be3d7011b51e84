package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/cspscan/cspscan/cmd/version"
	"github.com/cspscan/cspscan/internal/document"
	"github.com/cspscan/cspscan/internal/sarif"
	"github.com/cspscan/cspscan/pkg/csp"
	"github.com/cspscan/cspscan/pkg/shared/files"
)

// Output format constants
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// collectPathDocuments loads the document at path, or every eligible document
// under it when path is a directory.
func collectPathDocuments(path string, force bool, log hclog.Logger) ([]*document.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path stat error: %w", err)
	}

	if !info.IsDir() {
		doc, err := document.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if !doc.Eligible() && !force {
			log.Debug("skipping ineligible document", "target", doc.Target, "syntax", doc.Syntax)
			return nil, nil
		}
		return []*document.Document{doc}, nil
	}

	// Directory walk picks up only recognisable document types; --force
	// does not change that, it only bypasses the check for explicit targets.
	var docs []*document.Document
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || csp.DetectSyntax(p) == "" {
			return nil
		}
		doc, err := document.LoadFile(p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", path, err)
	}
	return docs, nil
}

// jsonFinding is one finding in the json report, with its position resolved.
type jsonFinding struct {
	Target  string   `json:"target"`
	RuleID  string   `json:"rule_id"`
	Message string   `json:"message"`
	Span    csp.Span `json:"span"`
	Line    int      `json:"line"`
	Column  int      `json:"column"`
}

// renderResults writes the findings in the requested format to the output
// path, or stdout when none is given.
func renderResults(options *RunOptionsValidate, results []documentResult) error {
	out, closeOut, err := openOutput(options.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	switch options.Format {
	case FormatPlain:
		return renderPlain(out, results)
	case FormatJSON:
		return renderJSON(out, results)
	case FormatSARIF:
		return renderSARIF(out, results)
	default:
		return fmt.Errorf("unknown output format: %s", options.Format)
	}
}

// openOutput returns the report destination and a close func.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if err := files.CreateFolderIfNotExists(filepath.Dir(path)); err != nil {
		return nil, nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return file, func() { file.Close() }, nil
}

func renderPlain(w io.Writer, results []documentResult) error {
	for _, result := range results {
		index := csp.NewLineIndex(result.doc.Text)
		for _, finding := range result.findings {
			line, column := index.Position(finding.Span.Start)
			fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", result.doc.Target, line, column, finding.Message, finding.RuleID)
		}
	}
	return nil
}

func renderJSON(w io.Writer, results []documentResult) error {
	findings := make([]jsonFinding, 0)
	for _, result := range results {
		index := csp.NewLineIndex(result.doc.Text)
		for _, finding := range result.findings {
			line, column := index.Position(finding.Span.Start)
			findings = append(findings, jsonFinding{
				Target:  result.doc.Target,
				RuleID:  finding.RuleID,
				Message: finding.Message,
				Span:    finding.Span,
				Line:    line,
				Column:  column,
			})
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(findings)
}

func renderSARIF(w io.Writer, results []documentResult) error {
	docs := make([]sarif.DocumentFindings, 0, len(results))
	for _, result := range results {
		docs = append(docs, sarif.DocumentFindings{
			Target:   result.doc.Target,
			Index:    csp.NewLineIndex(result.doc.Text),
			Findings: result.findings,
		})
	}

	report, err := sarif.NewReport(docs, version.CoreVersion)
	if err != nil {
		return err
	}
	return sarif.WriteReport(report, w)
}

// normalizeFormat lowercases and trims a user-supplied format name.
func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// HasFlags reports whether any flag in the set was changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) { changed = true })
	return changed
}
