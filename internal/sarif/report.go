// Package sarif renders validation findings as a SARIF 2.1.0 report.
package sarif

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/cspscan/cspscan/pkg/csp"
)

const (
	toolName       = "cspscan"
	informationURI = "https://github.com/cspscan/cspscan"
)

// DocumentFindings pairs one validated document with its findings.
type DocumentFindings struct {
	// Target is the file path or URL recorded as the artifact location.
	Target   string
	Index    *csp.LineIndex
	Findings []csp.Finding
}

// NewReport builds a SARIF report with a single run: one reporting
// descriptor per CSP rule and one warning-level result per finding. The run
// is tagged with a fresh scan id and timestamp.
func NewReport(docs []DocumentFindings, version string) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	run.Tool.Driver.Version = &version
	run.Properties = sarif.Properties{
		"scan_id":   uuid.New().String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	for _, rule := range csp.Rules() {
		descriptor := run.AddRule(rule.ID).
			WithDescription(rule.Message).
			WithHelpURI(informationURI)
		if rule.Flag != "" {
			descriptor.Properties = sarif.Properties{"flag": rule.Flag}
		}
	}

	for _, doc := range docs {
		for _, finding := range doc.Findings {
			startLine, startColumn := doc.Index.Position(finding.Span.Start)
			endLine, endColumn := doc.Index.Position(finding.Span.End)

			region := sarif.NewRegion().
				WithStartLine(startLine).
				WithStartColumn(startColumn).
				WithEndLine(endLine).
				WithEndColumn(endColumn).
				WithCharOffset(finding.Span.Start).
				WithCharLength(finding.Span.End - finding.Span.Start)

			location := sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewSimpleArtifactLocation(doc.Target)).
					WithRegion(region),
			)

			run.CreateResultForRule(finding.RuleID).
				WithLevel("warning").
				WithMessage(sarif.NewTextMessage(finding.Message)).
				AddLocation(location)
		}
	}

	report.AddRun(run)
	return report, nil
}

// WriteReport serialises the report as indented JSON to w.
func WriteReport(report *sarif.Report, w io.Writer) error {
	if err := report.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to write sarif report: %w", err)
	}
	return nil
}
