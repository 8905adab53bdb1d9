package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/rules"
)

func sampleResults() []findings.ScanResult {
	return []findings.ScanResult{
		{File: "src/App.tsx", Violations: []findings.Violation{
			{RuleID: "TYPO-001", Category: "typography", Message: "Light font weight", File: "src/App.tsx", Line: 3, Column: 18, Match: "font-light", Suggestion: "font-normal", Fingerprint: "fp-1"},
			{RuleID: "COLOR-001", Category: "color", Message: "Palette color", File: "src/App.tsx", Line: 4, Column: 5, Match: "bg-gray-500", Suggestion: "bg-muted", Fingerprint: "fp-2"},
		}},
		{File: "src/Clean.tsx"},
		{File: "src/broken.tsx", Err: errors.New("permission denied")},
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		results []findings.ScanResult
		want    int
	}{
		{name: "no files", results: nil, want: ExitOK},
		{name: "clean files", results: []findings.ScanResult{{File: "a.tsx"}, {File: "b.tsx"}}, want: ExitOK},
		{name: "skipped only", results: []findings.ScanResult{{File: "a.tsx", Err: errors.New("x")}}, want: ExitOK},
		{name: "violations", results: sampleResults(), want: ExitViolations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.results))
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResults(), false))

	expected := "src/App.tsx\n" +
		"  3:18  typography  font-light  Light font weight (TYPO-001)\n" +
		"    suggestion: font-normal\n" +
		"  4:5  color       bg-gray-500  Palette color (COLOR-001)\n" +
		"    suggestion: bg-muted\n" +
		"\n" +
		"src/broken.tsx\n" +
		"  skipped: permission denied\n" +
		"\n" +
		"2 violations in 1 file (typography: 1, color: 1; 3 files scanned, 1 skipped)\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextClean(t *testing.T) {
	tests := []struct {
		name    string
		results []findings.ScanResult
		want    string
	}{
		{name: "empty", results: nil, want: "No design system violations found (0 files scanned)\n"},
		{name: "single file", results: []findings.ScanResult{{File: "a.tsx"}}, want: "No design system violations found (1 file scanned)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, tt.results, false))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResults(), true))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "font-normal")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults(), "1.0.0"))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "lawbook", got.Tool)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, 3, got.Summary.Files)
	assert.Equal(t, 2, got.Summary.Violations)
	assert.Equal(t, 1, got.Summary.Skipped)
	assert.Equal(t, map[string]int{"typography": 1, "color": 1}, got.Summary.ByCategory)

	require.Len(t, got.Files, 2)
	assert.Equal(t, "src/App.tsx", got.Files[0].File)
	assert.Len(t, got.Files[0].Violations, 2)
	assert.Equal(t, "bg-muted", got.Files[0].Violations[1].Suggestion)
	assert.Equal(t, "src/broken.tsx", got.Files[1].File)
	assert.Equal(t, "permission denied", got.Files[1].Error)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, "dev"))
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestWriteFormats(t *testing.T) {
	for _, format := range []string{"", FormatText, FormatJSON, FormatSARIF, FormatHTML} {
		t.Run("format "+format, func(t *testing.T) {
			var first, second bytes.Buffer
			opts := Options{Format: format, Rules: rules.Default(), Version: "dev"}
			require.NoError(t, Write(&first, sampleResults(), opts))
			require.NoError(t, Write(&second, sampleResults(), opts))
			assert.NotEmpty(t, first.String())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), Options{Format: FormatSARIF, Version: "dev"}))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc["version"])
	runs := doc["runs"].([]interface{})
	require.Len(t, runs, 1)
	results := runs[0].(map[string]interface{})["results"].([]interface{})
	assert.Len(t, results, 2)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil, Options{Format: "xml"})
	require.Error(t, err)
	assert.Equal(t, `unsupported report format "xml"`, err.Error())
}

func TestWriteSARIFProvenance(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Format:     FormatSARIF,
		Version:    "dev",
		Provenance: &Provenance{RepositoryURL: "https://github.com/acme/web", Revision: "abc123", Branch: "main"},
	}
	require.NoError(t, Write(&buf, sampleResults(), opts))
	assert.Contains(t, buf.String(), `"repositoryUri": "https://github.com/acme/web"`)
	assert.Contains(t, buf.String(), `"revisionId": "abc123"`)
	assert.Contains(t, buf.String(), `"branch": "main"`)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResults(), Options{Format: FormatHTML, Version: "1.0.0"}))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "2 violations in 1 of 3 scanned files, 1 skipped")
	assert.Contains(t, out, `<li class="category-typography">typography: 1</li>`)
	assert.Contains(t, out, `<li class="category-color">color: 1</li>`)
	assert.Contains(t, out, "<h2>src/App.tsx</h2>")
	assert.NotContains(t, out, "src/Clean.tsx")
	assert.Contains(t, out, "skipped: permission denied")
}

func TestWriteHTMLClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, []findings.ScanResult{{File: "a.tsx"}}, "dev"))
	assert.Contains(t, buf.String(), "No design system violations found.")
}
