package findings

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/scan-io-git/lawbook/pkg/issuecorrelation"
)

// Violation is a single place where scanned text breaks a law book rule.
type Violation struct {
	RuleID     string `json:"rule_id"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Match      string `json:"match"`
	Suggestion string `json:"suggestion"`
	// Snippet is the source line the violation was found on, trimmed.
	Snippet     string `json:"snippet,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

// ScanResult holds the violations of one file.
// Err is set when the file was skipped; Violations is empty in that case.
type ScanResult struct {
	File       string      `json:"file"`
	Violations []Violation `json:"violations"`
	Err        error       `json:"-"`
}

// Skipped reports whether the file could not be scanned.
func (r ScanResult) Skipped() bool {
	return r.Err != nil
}

// fingerprintNamespace scopes violation fingerprints.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/scan-io-git/lawbook/violation"))

// Fingerprint returns a stable identifier of a violation, so repeated scans of unchanged input agree.
func Fingerprint(file string, line, column int, ruleID, match string) string {
	key := fmt.Sprintf("%s:%d:%d:%s:%s", file, line, column, ruleID, match)
	return uuid.NewSHA1(fingerprintNamespace, []byte(key)).String()
}

// Summary aggregates scan results into totals.
type Summary struct {
	Files               int            `json:"files"`
	FilesWithViolations int            `json:"files_with_violations"`
	Skipped             int            `json:"skipped"`
	Violations          int            `json:"violations"`
	ByCategory          map[string]int `json:"by_category"`
	ByRule              map[string]int `json:"by_rule"`
}

// Summarize computes totals over results.
func Summarize(results []ScanResult) Summary {
	s := Summary{
		ByCategory: map[string]int{},
		ByRule:     map[string]int{},
	}
	for _, r := range results {
		s.Files++
		if r.Skipped() {
			s.Skipped++
			continue
		}
		if len(r.Violations) > 0 {
			s.FilesWithViolations++
		}
		for _, v := range r.Violations {
			s.Violations++
			s.ByCategory[v.Category]++
			s.ByRule[v.RuleID]++
		}
	}
	return s
}

// BaselineDiff describes how the violations of a scan relate to a baseline.
type BaselineDiff struct {
	Suppressed int                                  // violations already recorded in the baseline
	Fixed      []issuecorrelation.ViolationMetadata // baseline violations that are gone
}

// FilterBaseline drops violations that correlate with a baseline entry.
func FilterBaseline(results []ScanResult, baseline []issuecorrelation.ViolationMetadata) ([]ScanResult, BaselineDiff) {
	if len(baseline) == 0 {
		return results, BaselineDiff{}
	}

	var current []issuecorrelation.ViolationMetadata
	for _, r := range results {
		for _, v := range r.Violations {
			current = append(current, v.Metadata())
		}
	}
	correlator := issuecorrelation.NewCorrelator(current, baseline)
	correlator.Process()

	index := 0
	filtered := make([]ScanResult, 0, len(results))
	for _, r := range results {
		kept := r
		kept.Violations = nil
		for _, v := range r.Violations {
			if !correlator.MatchedNew(index) {
				kept.Violations = append(kept.Violations, v)
			}
			index++
		}
		filtered = append(filtered, kept)
	}
	return filtered, BaselineDiff{
		Suppressed: len(correlator.Matches()),
		Fixed:      correlator.UnmatchedKnown(),
	}
}

// Metadata returns the fields of v used to correlate it with a baseline.
func (v Violation) Metadata() issuecorrelation.ViolationMetadata {
	return issuecorrelation.ViolationMetadata{
		RuleID:      v.RuleID,
		Filename:    v.File,
		Line:        v.Line,
		Column:      v.Column,
		Match:       v.Match,
		SnippetHash: issuecorrelation.SnippetHash(v.Snippet),
	}
}
