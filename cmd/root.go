package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cspscan/cspscan/cmd/validate"
	"github.com/cspscan/cspscan/cmd/version"
	"github.com/cspscan/cspscan/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "cspscan [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Cspscan validates HTML/JS/CSS documents against Content-Security-Policy rules.",
		Long: `Cspscan scans HTML, JavaScript and CSS sources against a fixed set of
	Content-Security-Policy rules (inline scripts, string-to-code constructs,
	inline event handlers, external resources) and reports every violation
	with its exact location.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is config.yml)")
	rootCmd.AddCommand(validate.ValidateCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps its outcome to an exit code:
// 0 on success, 1 when findings were reported, 2 on any other error.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, validate.ErrFindings) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 2
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config file: %v\n", err)
		os.Exit(2)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	validate.Init(AppConfig)
}
