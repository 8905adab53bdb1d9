package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigFile is looked up in the working directory when no configuration path is given.
const DefaultConfigFile = ".lawbook.yml"

type Config struct {
	Logger    Logger    `yaml:"logger"`
	Validator Validator `yaml:"validator"`
	Rules     Rules     `yaml:"rules"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Validator holds the scanning settings of the validate command.
type Validator struct {
	Extensions  []string `yaml:"extensions"`
	Exclude     []string `yaml:"exclude"`
	Threads     int      `yaml:"threads"`
	Format      string   `yaml:"format"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

// Rules tunes the built-in rule table for a project.
type Rules struct {
	// Disable lists rule IDs that are dropped from the table.
	Disable []string `yaml:"disable"`
	// Allow lists exact class names that never produce a violation (brand exceptions).
	Allow  []string     `yaml:"allow"`
	Custom []CustomRule `yaml:"custom"`
}

// CustomRule is a project-specific rule appended to the built-in table.
type CustomRule struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`
	Fix      string `yaml:"fix"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.SetStrict(true)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig resolves the configuration file and loads it.
// The explicit path has priority, then LAWBOOK_CONFIG, then DefaultConfigFile in the working directory.
// Built-in defaults are returned when none of them is set.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("LAWBOOK_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return &Config{}, nil
		}
		path = DefaultConfigFile
	}

	cfg, err := NewConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}
