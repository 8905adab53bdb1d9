package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/rules"
)

type palette struct {
	file, position, match, fix, warn, fail, ok *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		file:     color.New(color.Bold, color.Underline),
		position: color.New(color.Faint),
		match:    color.New(color.FgYellow),
		fix:      color.New(color.FgGreen),
		warn:     color.New(color.FgMagenta),
		fail:     color.New(color.FgRed, color.Bold),
		ok:       color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.file, p.position, p.match, p.fix, p.warn, p.fail, p.ok} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// WriteText writes violations grouped by file, each with its suggested replacement, followed by a count line.
func WriteText(w io.Writer, results []findings.ScanResult, enableColor bool) error {
	p := newPalette(enableColor)
	bw := bufio.NewWriter(w)

	for _, r := range results {
		if !r.Skipped() && len(r.Violations) == 0 {
			continue
		}

		fmt.Fprintln(bw, p.file.Sprint(r.File))
		if r.Skipped() {
			fmt.Fprintf(bw, "  %s %v\n\n", p.warn.Sprint("skipped:"), r.Err)
			continue
		}
		for _, v := range r.Violations {
			fmt.Fprintf(bw, "  %s  %-10s  %s  %s (%s)\n",
				p.position.Sprintf("%d:%d", v.Line, v.Column),
				v.Category,
				p.match.Sprint(v.Match),
				v.Message,
				v.RuleID,
			)
			fmt.Fprintf(bw, "    suggestion: %s\n", p.fix.Sprint(v.Suggestion))
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, summaryLine(findings.Summarize(results), p))
	return bw.Flush()
}

func summaryLine(s findings.Summary, p palette) string {
	scanned := fmt.Sprintf("%d %s scanned", s.Files, plural(s.Files, "file", "files"))
	if s.Skipped > 0 {
		scanned += fmt.Sprintf(", %d skipped", s.Skipped)
	}

	if s.Violations == 0 {
		return p.ok.Sprint("No design system violations found") + " (" + scanned + ")"
	}

	var parts []string
	for _, c := range rules.Categories {
		if n := s.ByCategory[c.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", c, n))
		}
	}
	return fmt.Sprintf("%s in %d %s (%s; %s)",
		p.fail.Sprintf("%d %s", s.Violations, plural(s.Violations, "violation", "violations")),
		s.FilesWithViolations, plural(s.FilesWithViolations, "file", "files"),
		strings.Join(parts, ", "),
		scanned,
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
