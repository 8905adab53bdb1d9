package rules

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	yaml "gopkg.in/yaml.v2"

	ruletable "github.com/scan-io-git/lawbook/internal/rules"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ruleEntry is the exported form of a rule.
type ruleEntry struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`
	Fix      string `yaml:"fix"`
}

// selectRules returns the rules of t, restricted to category when one is given.
func selectRules(t *ruletable.Table, category string) []ruleEntry {
	var wanted ruletable.Category
	if category != "" {
		wanted, _ = ruletable.ParseCategory(category)
	}

	var entries []ruleEntry
	for _, r := range t.Rules() {
		if category != "" && r.Category != wanted {
			continue
		}
		entries = append(entries, ruleEntry{
			ID:       r.ID,
			Category: r.Category.String(),
			Pattern:  r.Expr,
			Message:  r.Message,
			Fix:      r.Fix,
		})
	}
	return entries
}

// writeRules prints entries as a table or as YAML.
func writeRules(w io.Writer, entries []ruleEntry, format string) error {
	if format == formatYAML {
		out, err := yaml.Marshal(map[string][]ruleEntry{"rules": entries})
		if err != nil {
			return fmt.Errorf("failed to marshal rules: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CATEGORY", "MESSAGE", "FIX").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		tbl.Row(e.ID, e.Category, e.Message, e.Fix)
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
