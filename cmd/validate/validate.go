package validate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/lawbook/cmd/version"
	"github.com/scan-io-git/lawbook/pkg/shared/config"
	"github.com/scan-io-git/lawbook/pkg/shared/logger"
)

// RunOptionsValidate holds the arguments for the validate command.
type RunOptionsValidate struct {
	Format        string
	OutputPath    string
	Extensions    []string
	Exclude       []string
	Threads       int
	Changed       bool
	NoColor       bool
	StdinFilename string
	Baseline      string
}

// Global variables for configuration and command arguments
var (
	AppConfig            *config.Config
	validateOptions      RunOptionsValidate
	exampleValidateUsage = `  # Validating a source directory
  lawbook validate ./src

  # Validating specific files
  lawbook validate src/App.tsx src/components/Button.tsx

  # Validating content from standard input
  cat src/App.tsx | lawbook validate --stdin-filename src/App.tsx -

  # Validating only files changed in the git worktree, with 4 concurrent threads
  lawbook validate --changed -j 4 .

  # Writing a SARIF report, ignoring violations already recorded in a previous report
  lawbook validate --format sarif --baseline lawbook.sarif --output reports/ ./src

  # Validating Vue and Svelte files only, skipping a generated folder
  lawbook validate --ext vue,svelte --exclude generated ./src`
)

// ValidateCmd represents the validate command.
var ValidateCmd = &cobra.Command{
	Use:                   "validate [--format/-f FORMAT] [--output/-o PATH] [--ext/-e EXTENSIONS] [--exclude DIRS] [-j THREADS_NUMBER, default=1] [--changed] [--baseline PATH] {PATH... | -}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleValidateUsage,
	Short:                 "Validates source files against the design system law book",
	Long: `Validates source files against the design system law book.

Tailwind class names are checked for typography (font weights and sizes), spacing (the 8-point grid)
and color (semantic tokens instead of palette colors or literals) violations. Comments are ignored.
The command exits with code 1 when violations are found or the input is invalid.`,
	RunE: runValidateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runValidateCommand executes the validate command.
func runValidateCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-validate")

	if err := validateValidateArgs(&validateOptions, args); err != nil {
		logger.Error("invalid validate arguments", "error", err)
		return usageError(err)
	}
	resolveOptions(cmd.Flags(), &validateOptions, AppConfig)

	run := &validation{
		options: validateOptions,
		config:  AppConfig,
		logger:  logger,
		stdin:   os.Stdin,
		stdout:  cmd.OutOrStdout(),
		version: version.CoreVersion,
	}
	return run.execute(cmd.Context(), args)
}

// Initialize flags for the validate command.
func init() {
	ValidateCmd.Flags().StringVarP(&validateOptions.Format, "format", "f", config.DefaultFormat, "Format of the report: text, json, sarif or html.")
	ValidateCmd.Flags().StringVarP(&validateOptions.OutputPath, "output", "o", "", "Path to the output file or directory where the report will be saved. Defaults to stdout.")
	ValidateCmd.Flags().StringSliceVarP(&validateOptions.Extensions, "ext", "e", nil, "Comma-separated file extensions scanned in directories (e.g., tsx,vue).")
	ValidateCmd.Flags().StringSliceVar(&validateOptions.Exclude, "exclude", nil, "Comma-separated directory names or relative paths that are not scanned.")
	ValidateCmd.Flags().IntVarP(&validateOptions.Threads, "threads", "j", config.DefaultThreads, "Number of files scanned concurrently.")
	ValidateCmd.Flags().BoolVar(&validateOptions.Changed, "changed", false, "Scan only files modified, added or untracked in the git worktree of each directory.")
	ValidateCmd.Flags().BoolVar(&validateOptions.NoColor, "no-color", false, "Disable colored text output.")
	ValidateCmd.Flags().StringVar(&validateOptions.StdinFilename, "stdin-filename", "", "File name reported for content read from standard input.")
	ValidateCmd.Flags().StringVar(&validateOptions.Baseline, "baseline", "", "Path to a SARIF report from a previous run. Violations recorded there are not reported again.")
	ValidateCmd.Flags().BoolP("help", "h", false, "Show help for the validate command.")
}
