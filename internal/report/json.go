package report

import (
	"encoding/json"
	"io"

	"github.com/scan-io-git/lawbook/internal/findings"
)

type jsonReport struct {
	Tool    string           `json:"tool"`
	Version string           `json:"version"`
	Summary findings.Summary `json:"summary"`
	Files   []jsonFile       `json:"files"`
}

type jsonFile struct {
	File       string               `json:"file"`
	Violations []findings.Violation `json:"violations,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// WriteJSON writes the summary and every file that has violations or was skipped.
func WriteJSON(w io.Writer, results []findings.ScanResult, version string) error {
	report := jsonReport{
		Tool:    "lawbook",
		Version: version,
		Summary: findings.Summarize(results),
		Files:   reportedFiles(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// reportedFiles keeps the files that have violations or were skipped.
func reportedFiles(results []findings.ScanResult) []jsonFile {
	files := []jsonFile{}
	for _, r := range results {
		switch {
		case r.Skipped():
			files = append(files, jsonFile{File: r.File, Error: r.Err.Error()})
		case len(r.Violations) > 0:
			files = append(files, jsonFile{File: r.File, Violations: r.Violations})
		}
	}
	return files
}
