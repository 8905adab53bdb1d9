package rules

import (
	"fmt"

	ruletable "github.com/scan-io-git/lawbook/internal/rules"
)

// validateRulesArgs validates the arguments provided to the rules command.
func validateRulesArgs(options *RunOptionsRules) error {
	if options.Category != "" {
		if _, err := ruletable.ParseCategory(options.Category); err != nil {
			return err
		}
	}

	if options.Format != formatText && options.Format != formatYAML {
		return fmt.Errorf("unsupported format %q, expected one of %s, %s", options.Format, formatText, formatYAML)
	}
	return nil
}
