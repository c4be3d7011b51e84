package validate

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/cspscan/cspscan/internal/document"
	"github.com/cspscan/cspscan/pkg/csp"
	"github.com/cspscan/cspscan/pkg/shared/config"
	"github.com/cspscan/cspscan/pkg/shared/httpclient"
	"github.com/cspscan/cspscan/pkg/shared/logger"
)

// ErrFindings signals that validation completed and reported at least one
// finding. The root command maps it to exit code 1.
var ErrFindings = errors.New("validation findings reported")

// RunOptionsValidate holds the arguments for the validate command.
type RunOptionsValidate struct {
	URLs                   []string
	Format                 string
	OutputPath             string
	AllowExternalResources bool
	Force                  bool
	At                     int
}

// Global variables for configuration and command arguments
var (
	AppConfig            *config.Config
	validateOptions      RunOptionsValidate
	exampleValidateUsage = `  # Validating a single file
  cspscan validate index.html

  # Validating every eligible file under a directory, as SARIF
  cspscan validate --format sarif --output report.sarif ./app

  # Validating a remote page
  cspscan validate --url https://example.com/index.html

  # Enabling the external-resource rules (off by default)
  cspscan validate --allow-external-resources index.html

  # Validating a file whose type is not recognised by extension
  cspscan validate --force snippet.tpl

  # Showing the message of the finding covering byte offset 120
  cspscan validate --at 120 index.html`
)

// ValidateCmd represents the validate command.
var ValidateCmd = &cobra.Command{
	Use:                   "validate [--format/-f plain|json|sarif] [--output/-o PATH] [--url/-u URL]... [--allow-external-resources] [--force] [--at OFFSET] [PATH...]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleValidateUsage,
	Short:                 "Validates documents against the Content-Security-Policy rules",
	RunE:                  runValidateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func init() {
	ValidateCmd.Flags().StringVarP(&validateOptions.Format, "format", "f", "plain", "output format: plain, json, or sarif")
	ValidateCmd.Flags().StringVarP(&validateOptions.OutputPath, "output", "o", "", "write the report to a file instead of stdout")
	ValidateCmd.Flags().StringSliceVarP(&validateOptions.URLs, "url", "u", nil, "fetch and validate a document over HTTP(S); repeatable")
	ValidateCmd.Flags().BoolVar(&validateOptions.AllowExternalResources, "allow-external-resources", false,
		"enable the external-resource and javascript-url rules (they are off by default)")
	ValidateCmd.Flags().BoolVar(&validateOptions.Force, "force", false, "validate documents whose type is not recognised")
	ValidateCmd.Flags().IntVar(&validateOptions.At, "at", -1, "print only the message of the finding covering this byte offset (single target)")
}

// runValidateCommand executes the validate command.
func runValidateCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-validate")

	if err := validateValidateArgs(&validateOptions, args); err != nil {
		logger.Error("invalid validate arguments", "error", err)
		return err
	}

	// Host-level gate: when validation is disabled in the config, the
	// engine is not invoked at all.
	if !config.IsValidationEnabled(AppConfig) {
		logger.Info("validation is disabled in the configuration, skipping")
		return nil
	}

	flags := config.FlagSnapshot(AppConfig)
	if validateOptions.AllowExternalResources {
		flags[csp.FlagAllowExternalResources] = true
	}

	docs, err := collectDocuments(&validateOptions, args, logger)
	if err != nil {
		logger.Error("failed to collect documents", "error", err)
		return err
	}
	if len(docs) == 0 {
		logger.Warn("no eligible documents to validate")
		return nil
	}

	validator := csp.NewValidator()
	results := make([]documentResult, 0, len(docs))
	total := 0
	for _, doc := range docs {
		findings := validator.Validate(doc.Text, flags.Enabled)
		logger.Debug("validated document", "target", doc.Target, "findings", len(findings))
		total += len(findings)
		results = append(results, documentResult{doc: doc, findings: findings})
	}

	if validateOptions.At >= 0 {
		return reportFindingAt(results[0], validateOptions.At)
	}

	if err := renderResults(&validateOptions, results); err != nil {
		logger.Error("failed to render results", "error", err)
		return err
	}

	if total > 0 {
		logger.Info("validation completed", "documents", len(docs), "findings", total)
		return ErrFindings
	}

	logger.Info("validation completed, no findings", "documents", len(docs))
	return nil
}

// documentResult pairs a validated document with its findings.
type documentResult struct {
	doc      *document.Document
	findings []csp.Finding
}

// collectDocuments loads every file/directory argument and fetches every URL.
func collectDocuments(options *RunOptionsValidate, args []string, log hclog.Logger) ([]*document.Document, error) {
	docs := make([]*document.Document, 0, len(args)+len(options.URLs))

	for _, path := range args {
		pathDocs, err := collectPathDocuments(path, options.Force, log)
		if err != nil {
			return nil, err
		}
		docs = append(docs, pathDocs...)
	}

	if len(options.URLs) > 0 {
		client := httpclient.InitializeRestyClient(log, AppConfig)
		for _, url := range options.URLs {
			doc, err := document.Fetch(client, url)
			if err != nil {
				return nil, err
			}
			if !doc.Eligible() && !options.Force {
				log.Debug("skipping ineligible document", "target", doc.Target, "syntax", doc.Syntax)
				continue
			}
			docs = append(docs, doc)
		}
	}

	return docs, nil
}

// reportFindingAt prints only the message of the finding covering the given
// offset, mirroring a status-bar lookup. No finding at the offset is not an
// error.
func reportFindingAt(result documentResult, offset int) error {
	if finding, ok := csp.FindingAt(result.findings, offset); ok {
		fmt.Println(finding.Message)
		return ErrFindings
	}
	return nil
}
