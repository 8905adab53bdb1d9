package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/lawbook/cmd/rules"
	"github.com/scan-io-git/lawbook/cmd/validate"
	"github.com/scan-io-git/lawbook/cmd/version"
	"github.com/scan-io-git/lawbook/pkg/shared/config"
	"github.com/scan-io-git/lawbook/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "lawbook [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Lawbook validates front-end code against a design system law book.",
		Long: `Lawbook scans front-end source files for Tailwind classes that break the design system law book:
typography (font weights and sizes), spacing (the 8-point grid) and color (semantic tokens).
Every violation comes with a suggested replacement.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default is $LAWBOOK_CONFIG or ./.lawbook.yml).")
	rootCmd.AddCommand(validate.ValidateCmd)
	rootCmd.AddCommand(rules.RulesCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if !errors.IsSilent(err) {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
	}
	return errors.ExitCode(err, 1)
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing config file function is crashed - %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	validate.Init(AppConfig)
	rules.Init(AppConfig)
}
