// Package report renders scan results for people and machines.
package report

import (
	"fmt"
	"io"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/rules"
	"github.com/scan-io-git/lawbook/internal/sarif"
)

// Supported formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
	FormatHTML  = "html"
)

// Exit codes
const (
	ExitOK         = 0
	ExitViolations = 1
)

// Options configure a report.
type Options struct {
	Format string
	// Color enables ANSI colors in the text format.
	Color bool
	// Rules is the table the results were produced with; SARIF lists it in the tool driver.
	Rules   *rules.Table
	Version string
	// Provenance is recorded in SARIF reports when set.
	Provenance *Provenance
}

// Provenance identifies the repository revision that was scanned.
type Provenance struct {
	RepositoryURL string
	Revision      string
	Branch        string
}

// Write renders results in the requested format. Results are expected in path order.
func Write(w io.Writer, results []findings.ScanResult, opts Options) error {
	switch opts.Format {
	case "", FormatText:
		return WriteText(w, results, opts.Color)
	case FormatJSON:
		return WriteJSON(w, results, opts.Version)
	case FormatHTML:
		return WriteHTML(w, results, opts.Version)
	case FormatSARIF:
		table := opts.Rules
		if table == nil {
			table = rules.Default()
		}
		report, err := sarif.New(table, opts.Version)
		if err != nil {
			return err
		}
		if p := opts.Provenance; p != nil {
			report.AddProvenance(p.RepositoryURL, p.Revision, p.Branch)
		}
		report.AddResults(results)
		return report.Write(w)
	default:
		return fmt.Errorf("unsupported report format %q", opts.Format)
	}
}

// ExitCode returns ExitViolations when any result has a violation and ExitOK otherwise.
// Skipped files do not change the exit code.
func ExitCode(results []findings.ScanResult) int {
	for _, r := range results {
		if len(r.Violations) > 0 {
			return ExitViolations
		}
	}
	return ExitOK
}
