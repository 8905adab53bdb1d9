// Package rules holds the design system law book: the table of forbidden class patterns
// together with the replacement each of them should be rewritten to.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/scan-io-git/lawbook/pkg/shared/config"
)

var ErrUnknownRule = errors.New("unknown rule")

// Rule maps a class pattern to a category and a suggested replacement.
type Rule struct {
	ID       string
	Category Category
	// Expr is the class expression as written, before boundaries are added.
	Expr    string
	Message string
	// Fix is the static suggestion, or a description of the computed one when Check is set.
	Fix string
	// Check computes the suggestion from the submatches of Expr (class first).
	// A false result means the class complies with the law book.
	Check func(groups []string) (string, bool)

	pattern *regexp.Regexp
}

// Finding is a single rule match inside one line of text.
type Finding struct {
	Rule *Rule
	// Column is the 1-based byte offset of the class in the line.
	Column     int
	Match      string
	Suggestion string
}

// Compile builds a rule whose expression must match a whole class.
// A class starts at the beginning of the text or after a character that is neither
// a word character nor '-', so variant prefixes such as "hover:" or "md:" are allowed.
func Compile(id string, category Category, expr, message, fix string) (*Rule, error) {
	pattern, err := regexp.Compile(`(?:^|[^\w-])(` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", id, err)
	}
	return &Rule{
		ID:       id,
		Category: category,
		Expr:     expr,
		Message:  message,
		Fix:      fix,
		pattern:  pattern,
	}, nil
}

// MustCompile is like Compile but panics on an invalid expression.
func MustCompile(id string, category Category, expr, message, fix string) *Rule {
	r, err := Compile(id, category, expr, message, fix)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) withCheck(check func(groups []string) (string, bool)) *Rule {
	r.Check = check
	return r
}

// match returns the findings of this rule in line.
func (r *Rule) match(line string) []Finding {
	var findings []Finding
	for _, loc := range r.pattern.FindAllStringSubmatchIndex(line, -1) {
		start, end := loc[2], loc[3]
		if end < len(line) && isClassChar(line[end]) {
			continue
		}

		suggestion := r.Fix
		if r.Check != nil {
			groups := make([]string, 0, len(loc)/2-1)
			for i := 2; i < len(loc); i += 2 {
				if loc[i] < 0 {
					groups = append(groups, "")
					continue
				}
				groups = append(groups, line[loc[i]:loc[i+1]])
			}
			fix, violation := r.Check(groups)
			if !violation {
				continue
			}
			suggestion = fix
		}

		findings = append(findings, Finding{
			Rule:       r,
			Column:     start + 1,
			Match:      line[start:end],
			Suggestion: suggestion,
		})
	}
	return findings
}

func isClassChar(c byte) bool {
	return c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Table is an immutable, ordered set of rules plus the class names exempted from them.
type Table struct {
	rules []*Rule
	allow map[string]bool
}

// NewTable creates a table from rules, keeping their order.
func NewTable(rules ...*Rule) *Table {
	return &Table{rules: rules, allow: map[string]bool{}}
}

// Rules returns a copy of the rules in table order.
func (t *Table) Rules() []*Rule {
	return append([]*Rule(nil), t.rules...)
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Get returns the rule with the given ID.
func (t *Table) Get(id string) (*Rule, bool) {
	for _, r := range t.rules {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Allowed reports whether class is exempted from every rule.
func (t *Table) Allowed(class string) bool {
	return t.allow[class]
}

// Match applies every rule to one line of text and returns the findings ordered by column.
func (t *Table) Match(line string) []Finding {
	var findings []Finding
	for _, r := range t.rules {
		for _, f := range r.match(line) {
			if t.allow[f.Match] {
				continue
			}
			findings = append(findings, f)
		}
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Column < findings[j].Column
	})
	return findings
}

// Apply derives a new table: disabled rule IDs are removed, allowed class names are exempted
// and custom rules are appended after the existing ones.
func (t *Table) Apply(disable, allow []string, custom []*Rule) (*Table, error) {
	disabled := make(map[string]bool, len(disable))
	for _, id := range disable {
		if _, ok := t.Get(id); !ok {
			return nil, fmt.Errorf("cannot disable %q: %w", id, ErrUnknownRule)
		}
		disabled[id] = true
	}

	derived := &Table{allow: make(map[string]bool, len(t.allow)+len(allow))}
	for class := range t.allow {
		derived.allow[class] = true
	}
	for _, class := range allow {
		derived.allow[strings.TrimSpace(class)] = true
	}
	for _, r := range t.rules {
		if !disabled[r.ID] {
			derived.rules = append(derived.rules, r)
		}
	}
	for _, r := range custom {
		if _, exists := derived.Get(r.ID); exists {
			return nil, fmt.Errorf("custom rule %q conflicts with an existing rule", r.ID)
		}
		derived.rules = append(derived.rules, r)
	}
	return derived, nil
}

// FromConfig returns the default table adjusted by the rules section of the configuration.
func FromConfig(cfg *config.Config) (*Table, error) {
	table := Default()
	if cfg == nil {
		return table, nil
	}

	custom := make([]*Rule, 0, len(cfg.Rules.Custom))
	for _, c := range cfg.Rules.Custom {
		category, err := ParseCategory(c.Category)
		if err != nil {
			return nil, fmt.Errorf("custom rule %q: %w", c.ID, err)
		}
		r, err := Compile(c.ID, category, c.Pattern, c.Message, c.Fix)
		if err != nil {
			return nil, err
		}
		custom = append(custom, r)
	}

	return table.Apply(cfg.Rules.Disable, cfg.Rules.Allow, custom)
}
