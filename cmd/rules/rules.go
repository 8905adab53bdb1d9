package rules

import (
	"github.com/spf13/cobra"

	"github.com/scan-io-git/lawbook/pkg/shared/config"
	"github.com/scan-io-git/lawbook/pkg/shared/errors"
	"github.com/scan-io-git/lawbook/pkg/shared/logger"

	ruletable "github.com/scan-io-git/lawbook/internal/rules"
)

// RunOptionsRules holds the arguments for the rules command.
type RunOptionsRules struct {
	Category string
	Format   string
}

// Global variables for configuration and command arguments
var (
	AppConfig         *config.Config
	rulesOptions      RunOptionsRules
	exampleRulesUsage = `  # Listing every rule of the effective law book
  lawbook rules

  # Listing spacing rules only
  lawbook rules --category spacing

  # Exporting the rules as YAML
  lawbook rules --format yaml`
)

// RulesCmd represents the rules command.
var RulesCmd = &cobra.Command{
	Use:                   "rules [--category CATEGORY] [--format/-f text|yaml]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleRulesUsage,
	Short:                 "Lists the rules of the effective law book, including configured changes",
	Args:                  cobra.NoArgs,
	RunE:                  runRulesCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runRulesCommand executes the rules command.
func runRulesCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-rules")

	if err := validateRulesArgs(&rulesOptions); err != nil {
		logger.Error("invalid rules arguments", "error", err)
		return errors.NewCommandError(err, 1)
	}

	table, err := ruletable.FromConfig(AppConfig)
	if err != nil {
		logger.Error("failed to build the rule table", "error", err)
		return errors.NewCommandError(err, 1)
	}

	selected := selectRules(table, rulesOptions.Category)
	logger.Debug("rules selected", "total", table.Len(), "selected", len(selected))

	return writeRules(cmd.OutOrStdout(), selected, rulesOptions.Format)
}

// Initialize flags for the rules command.
func init() {
	RulesCmd.Flags().StringVar(&rulesOptions.Category, "category", "", "Show only rules of this category: typography, spacing or color.")
	RulesCmd.Flags().StringVarP(&rulesOptions.Format, "format", "f", formatText, "Output format: text or yaml.")
	RulesCmd.Flags().BoolP("help", "h", false, "Show help for the rules command.")
}
