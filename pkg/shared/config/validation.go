package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Formats lists the supported report formats.
var Formats = []string{"text", "json", "sarif", "html"}

var categories = []string{"typography", "spacing", "color"}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateValidatorConfig(&cfg.Validator); err != nil {
		return fmt.Errorf("YAML global config: validator directive is invalid: %w", err)
	}
	if err := ValidateRulesConfig(&cfg.Rules); err != nil {
		return fmt.Errorf("YAML global config: rules directive is invalid: %w", err)
	}
	return nil
}

// ValidateValidatorConfig checks the scanning settings.
func ValidateValidatorConfig(v *Validator) error {
	if v == nil {
		return fmt.Errorf("validator configuration is nil")
	}
	if v.Threads < 0 || v.Threads > 64 {
		return fmt.Errorf("threads must be between 1 and 64: %d", v.Threads)
	}
	if v.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size cannot be negative: %d", v.MaxFileSize)
	}
	if v.Format != "" {
		if err := ValidateFormat(v.Format); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRulesConfig checks rule overrides and compiles custom rule patterns.
func ValidateRulesConfig(r *Rules) error {
	if r == nil {
		return fmt.Errorf("rules configuration is nil")
	}

	seen := make(map[string]bool, len(r.Custom))
	for i, custom := range r.Custom {
		if strings.TrimSpace(custom.ID) == "" {
			return fmt.Errorf("custom rule #%d: id must be specified", i+1)
		}
		if seen[custom.ID] {
			return fmt.Errorf("custom rule %q is defined more than once", custom.ID)
		}
		seen[custom.ID] = true

		if !contains(categories, strings.ToLower(custom.Category)) {
			return fmt.Errorf("custom rule %q: unknown category %q, expected one of %s", custom.ID, custom.Category, strings.Join(categories, ", "))
		}
		if custom.Pattern == "" {
			return fmt.Errorf("custom rule %q: pattern must be specified", custom.ID)
		}
		if _, err := regexp.Compile(custom.Pattern); err != nil {
			return fmt.Errorf("custom rule %q: invalid pattern: %w", custom.ID, err)
		}
	}
	return nil
}

// ValidateFormat checks that the report format is supported.
func ValidateFormat(format string) error {
	if !contains(Formats, format) {
		return fmt.Errorf("unsupported format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
