package report

import (
	"fmt"
	"io"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/rules"
	"github.com/scan-io-git/lawbook/internal/template"
)

type categoryCount struct {
	Name  string
	Count int
}

type htmlReport struct {
	Version    string
	Summary    findings.Summary
	Categories []categoryCount
	Files      []jsonFile
}

// WriteHTML renders a standalone HTML page with the same content as the JSON report.
func WriteHTML(w io.Writer, results []findings.ScanResult, version string) error {
	tmpl, err := template.NewReportTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	summary := findings.Summarize(results)
	data := htmlReport{
		Version: version,
		Summary: summary,
		Files:   reportedFiles(results),
	}
	for _, c := range rules.Categories {
		if n := summary.ByCategory[c.String()]; n > 0 {
			data.Categories = append(data.Categories, categoryCount{Name: c.String(), Count: n})
		}
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}
