package validate

import (
	"fmt"

	"github.com/scan-io-git/lawbook/pkg/shared/config"
	"github.com/scan-io-git/lawbook/pkg/shared/files"
)

const stdinArg = "-"

// validateValidateArgs validates the arguments provided to the validate command.
func validateValidateArgs(options *RunOptionsValidate, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a target path or '-' for standard input must be specified")
	}

	for _, arg := range args {
		if arg == stdinArg && len(args) > 1 {
			return fmt.Errorf("'-' cannot be combined with other paths")
		}
	}

	if options.StdinFilename != "" && args[0] != stdinArg {
		return fmt.Errorf("the 'stdin-filename' flag requires '-' as the target")
	}

	if options.Changed && args[0] == stdinArg {
		return fmt.Errorf("the 'changed' flag cannot be used with standard input")
	}

	if options.Threads <= 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}

	if err := config.ValidateFormat(options.Format); err != nil {
		return err
	}

	if options.Baseline != "" {
		if err := files.ValidatePath(options.Baseline); err != nil {
			return fmt.Errorf("invalid baseline: %w", err)
		}
	}

	return nil
}
