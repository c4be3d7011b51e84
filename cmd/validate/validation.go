package validate

import (
	"fmt"
	"strings"
)

// validateValidateArgs validates the arguments provided to the validate command.
func validateValidateArgs(options *RunOptionsValidate, args []string) error {
	if len(args) == 0 && len(options.URLs) == 0 {
		return fmt.Errorf("either a target path or a 'url' flag must be specified")
	}

	options.Format = normalizeFormat(options.Format)
	switch options.Format {
	case FormatPlain, FormatJSON, FormatSARIF:
	default:
		return fmt.Errorf("the 'format' flag must be one of plain, json, sarif: %q", options.Format)
	}

	for _, url := range options.URLs {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("the 'url' flag must be an http(s) URL: %q", url)
		}
	}

	if options.At >= 0 {
		if len(args)+len(options.URLs) != 1 {
			return fmt.Errorf("the 'at' flag requires exactly one target")
		}
		if options.OutputPath != "" {
			return fmt.Errorf("the 'at' flag cannot be combined with 'output'")
		}
	}

	return nil
}
