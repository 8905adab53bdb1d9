package config

import (
	"reflect"
	"strings"
)

const (
	DefaultThreads     = 1
	DefaultFormat      = "text"
	DefaultMaxFileSize = 2 << 20
)

// DefaultExtensions are the file extensions scanned when a directory is given.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".html", ".vue", ".svelte", ".astro", ".mdx"}

// DefaultExclude are directory names that are never descended into.
var DefaultExclude = []string{"node_modules", ".git", ".next", ".nuxt", ".svelte-kit", "dist", "build", "coverage", "vendor"}

// SetThen provides a utility to select the first value if set, otherwise defaults.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// GetExtensions returns the configured extensions normalized to a lowercase ".ext" form.
func GetExtensions(cfg *Config) []string {
	var exts []string
	if cfg != nil {
		exts = cfg.Validator.Extensions
	}
	return NormalizeExtensions(SetThen(exts, DefaultExtensions))
}

// GetExclude returns the directory names excluded from walking.
func GetExclude(cfg *Config) []string {
	if cfg == nil {
		return DefaultExclude
	}
	return SetThen(cfg.Validator.Exclude, DefaultExclude)
}

// GetThreads returns the configured worker count.
func GetThreads(cfg *Config) int {
	if cfg == nil {
		return DefaultThreads
	}
	return SetThen(cfg.Validator.Threads, DefaultThreads)
}

// GetFormat returns the configured report format.
func GetFormat(cfg *Config) string {
	if cfg == nil {
		return DefaultFormat
	}
	return SetThen(cfg.Validator.Format, DefaultFormat)
}

// GetMaxFileSize returns the size above which files are skipped.
func GetMaxFileSize(cfg *Config) int64 {
	if cfg == nil {
		return DefaultMaxFileSize
	}
	return SetThen(cfg.Validator.MaxFileSize, int64(DefaultMaxFileSize))
}

// NormalizeExtensions lowercases extensions and adds the leading dot where it is missing.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
