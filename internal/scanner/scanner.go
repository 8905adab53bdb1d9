// Package scanner applies the rule table to source files.
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/lexer"
	"github.com/scan-io-git/lawbook/internal/rules"
)

const maxSnippetLength = 200

// Options control which files are scanned and how.
type Options struct {
	Extensions  []string // lowercase extensions with a leading dot
	Exclude     []string // directory names or root-relative directory paths that are not descended into
	Threads     int      // number of files scanned concurrently
	MaxFileSize int64    // files above this size are skipped, 0 disables the limit
	Changed     bool     // restrict directories to files changed in their git worktree
}

// Scanner represents the configuration and behavior of a scanner.
type Scanner struct {
	table  *rules.Table
	opts   Options
	logger hclog.Logger
}

// New creates a new Scanner instance with the provided rule table.
func New(table *rules.Table, opts Options, logger hclog.Logger) *Scanner {
	if opts.Threads <= 0 {
		opts.Threads = 1
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{
		table:  table,
		opts:   opts,
		logger: logger,
	}
}

// ScanPaths scans every file reachable from paths and returns one result per file, ordered by path.
// A path that does not exist fails the whole call; files that cannot be read are reported on their result.
func (s *Scanner) ScanPaths(ctx context.Context, paths []string) ([]findings.ScanResult, error) {
	files, err := s.CollectFiles(paths)
	if err != nil {
		return nil, err
	}
	return s.ScanFiles(ctx, files)
}

// ScanFiles scans files with at most Threads of them in flight. Results keep the order of files.
func (s *Scanner) ScanFiles(ctx context.Context, files []string) ([]findings.ScanResult, error) {
	s.logger.Info("scan starting", "files", len(files), "goroutines", s.opts.Threads, "rules", s.table.Len())

	results := make([]findings.ScanResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Threads)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.ScanFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("scan finished", "files", len(files))
	return results, nil
}

// ScanFile reads and scans a single file. Read failures are recorded on the result.
func (s *Scanner) ScanFile(path string) findings.ScanResult {
	content, err := s.readFile(path)
	if err != nil {
		s.logger.Warn("skipping file", "file", path, "error", err)
		return findings.ScanResult{File: path, Err: err}
	}
	return s.ScanContent(path, content)
}

// ScanReader scans content read from r, reported under name.
func (s *Scanner) ScanReader(name string, r io.Reader) (findings.ScanResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return findings.ScanResult{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return s.ScanContent(name, content), nil
}

// ScanContent strips comments from content and applies the rule table line by line.
func (s *Scanner) ScanContent(name string, content []byte) (result findings.ScanResult) {
	result.File = name
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scan failed", "file", name, "panic", r)
			result = findings.ScanResult{File: name, Err: fmt.Errorf("%w: %v", ErrScanFailed, r)}
		}
	}()

	original := bytes.Split(content, []byte("\n"))
	stripped := bytes.Split(lexer.Strip(content), []byte("\n"))

	for i, line := range stripped {
		text := strings.TrimSuffix(string(line), "\r")
		for _, f := range s.table.Match(text) {
			result.Violations = append(result.Violations, findings.Violation{
				RuleID:      f.Rule.ID,
				Category:    f.Rule.Category.String(),
				Message:     f.Rule.Message,
				File:        name,
				Line:        i + 1,
				Column:      f.Column,
				Match:       f.Match,
				Suggestion:  f.Suggestion,
				Snippet:     snippet(original[i]),
				Fingerprint: findings.Fingerprint(name, i+1, f.Column, f.Rule.ID, f.Match),
			})
		}
	}

	if len(result.Violations) > 0 {
		s.logger.Debug("violations found", "file", name, "count", len(result.Violations))
	}
	return result
}

func (s *Scanner) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if s.opts.MaxFileSize > 0 && info.Size() > s.opts.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return nil, ErrBinaryFile
	}
	return content, nil
}

func snippet(line []byte) string {
	text := strings.TrimSpace(string(line))
	if len(text) <= maxSnippetLength {
		return text
	}
	cut := maxSnippetLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
