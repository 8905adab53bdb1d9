package sarif

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/rules"
	"github.com/scan-io-git/lawbook/pkg/issuecorrelation"
)

const (
	ToolName           = "lawbook"
	ToolInformationURI = "https://github.com/scan-io-git/lawbook"
	// FingerprintKey names the partial fingerprint carrying findings.Fingerprint.
	FingerprintKey = "lawbookViolation/v1"
	resultLevel    = "error"
)

type Report struct {
	*sarif.Report
}

// New creates a report with a single run whose driver lists every rule of table.
func New(table *rules.Table, version string) (*Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(ToolName, ToolInformationURI)
	run.Tool.Driver.WithVersion(version)
	for _, r := range table.Rules() {
		run.AddRule(r.ID).
			WithName(r.ID).
			WithDescription(r.Message).
			WithTextHelp("Suggested fix: " + r.Fix).
			WithProperties(sarif.Properties{"category": r.Category.String()}).
			WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(resultLevel))
	}
	report.AddRun(run)

	return &Report{Report: report}, nil
}

// AddResults converts scan results into SARIF results. Skipped files become tool execution notifications.
func (r *Report) AddResults(results []findings.ScanResult) {
	run := r.Runs[0]
	invocation := run.AddInvocation(true)

	for _, result := range results {
		if result.Skipped() {
			invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications,
				sarif.NewNotification().
					WithLevel("warning").
					WithTextMessage(fmt.Sprintf("skipped: %v", result.Err)).
					WithLocations([]*sarif.Location{newLocation(result.File, sarif.NewRegion())}))
			continue
		}

		for _, v := range result.Violations {
			region := sarif.NewRegion().
				WithStartLine(v.Line).
				WithStartColumn(v.Column).
				WithEndColumn(v.Column + len(v.Match))
			if v.Snippet != "" {
				region.WithSnippet(sarif.NewArtifactContent().WithText(v.Snippet))
			}

			res := sarif.NewRuleResult(v.RuleID).
				WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s: %s. Suggested fix: %s", v.Match, v.Message, v.Suggestion))).
				WithLevel(resultLevel).
				WithLocations([]*sarif.Location{newLocation(v.File, region)}).
				WithPartialFingerPrints(map[string]interface{}{FingerprintKey: v.Fingerprint})
			res.Properties = sarif.Properties{
				"category":   v.Category,
				"match":      v.Match,
				"suggestion": v.Suggestion,
			}
			run.AddResult(res)
		}
	}
}

// AddProvenance records the repository revision the results belong to. Nothing is recorded without a repository URL.
func (r *Report) AddProvenance(repositoryURL, revision, branch string) {
	if repositoryURL == "" {
		return
	}
	details := sarif.NewVersionControlDetails().WithRepositoryURI(repositoryURL)
	if revision != "" {
		details.WithRevisionID(revision)
	}
	if branch != "" {
		details.WithBranch(branch)
	}
	r.Runs[0].AddVersionControlProvenance(details)
}

// Write writes the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	return r.PrettyWrite(w)
}

// ReadReport reads a SARIF report from disk.
func ReadReport(inputPath string) (*Report, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	var report sarif.Report
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to parse SARIF report %q: %w", inputPath, err)
	}
	return &Report{Report: &report}, nil
}

// Baseline returns the violations recorded in every run of the report.
// Results that were not produced by lawbook are ignored.
func (r *Report) Baseline() []issuecorrelation.ViolationMetadata {
	var baseline []issuecorrelation.ViolationMetadata
	for _, run := range r.Runs {
		for _, result := range run.Results {
			match, _ := result.Properties["match"].(string)
			if result.RuleID == nil || match == "" || len(result.Locations) == 0 {
				continue
			}
			physical := result.Locations[0].PhysicalLocation
			if physical == nil || physical.ArtifactLocation == nil || physical.ArtifactLocation.URI == nil {
				continue
			}

			entry := issuecorrelation.ViolationMetadata{
				RuleID:   *result.RuleID,
				Filename: *physical.ArtifactLocation.URI,
				Match:    match,
			}
			if region := physical.Region; region != nil {
				if region.StartLine != nil {
					entry.Line = *region.StartLine
				}
				if region.StartColumn != nil {
					entry.Column = *region.StartColumn
				}
				if region.Snippet != nil && region.Snippet.Text != nil {
					entry.SnippetHash = issuecorrelation.SnippetHash(*region.Snippet.Text)
				}
			}
			baseline = append(baseline, entry)
		}
	}
	return baseline
}

// CollectCategoryInfo counts results per category, plus a "total" entry.
func (r *Report) CollectCategoryInfo() map[string]int {
	info := map[string]int{"total": 0}
	for _, run := range r.Runs {
		for _, result := range run.Results {
			if category, ok := result.Properties["category"].(string); ok {
				info[category]++
			}
			info["total"]++
		}
	}
	return info
}

func newLocation(file string, region *sarif.Region) *sarif.Location {
	return sarif.NewLocation().WithPhysicalLocation(
		sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(file)).
			WithRegion(region),
	)
}
