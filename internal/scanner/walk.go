package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scan-io-git/lawbook/internal/findings"
	"github.com/scan-io-git/lawbook/internal/git"
)

// Walk scans the files under root one at a time, in lexical order, handing each result to fn.
// Nothing is carried over between files, so a walk can be repeated at any time.
// Walking stops at the first error returned by fn.
func (s *Scanner) Walk(root string, fn func(findings.ScanResult) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return statError(root, err)
	}
	if !info.IsDir() {
		return fn(s.ScanFile(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("failed to access path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return fn(findings.ScanResult{File: path, Err: err})
		}
		if d.IsDir() {
			if path != root && s.excludedDir(root, path) {
				return fs.SkipDir
			}
			return nil
		}
		if !s.accepts(path) {
			return nil
		}
		return fn(s.ScanFile(path))
	})
}

// CollectFiles expands paths into the sorted, de-duplicated list of files to scan.
// Directories are walked recursively and filtered by extension; files named directly are always kept.
func (s *Scanner) CollectFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	seen := make(map[string]bool)
	var files []string
	add := func(file string) {
		if !seen[file] {
			seen[file] = true
			files = append(files, file)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, statError(path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		var found []string
		if s.opts.Changed {
			found, err = s.changedFiles(path)
		} else {
			found, err = s.walkFiles(path)
		}
		if err != nil {
			return nil, err
		}
		for _, file := range found {
			add(file)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) walkFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("failed to access path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && s.excludedDir(root, path) {
				s.logger.Debug("skipping directory", "path", path)
				return fs.SkipDir
			}
			return nil
		}
		if s.accepts(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return files, nil
}

// changedFiles lists the files under root that git reports as changed, keeping the root-relative form of walkFiles.
func (s *Scanner) changedFiles(root string) ([]string, error) {
	changed, err := git.ChangedFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files of %q: %w", root, err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, abs := range changed {
		rel, err := filepath.Rel(absRoot, abs)
		if err != nil {
			continue
		}
		if s.excludedPath(rel) || !s.accepts(abs) {
			continue
		}
		files = append(files, filepath.Join(root, rel))
	}
	s.logger.Debug("changed files collected", "root", root, "changed", len(changed), "accepted", len(files))
	return files, nil
}

// statError keeps ErrPathNotFound for missing paths and the underlying error otherwise.
func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", path, ErrPathNotFound)
	}
	return fmt.Errorf("failed to access %q: %w", path, err)
}

func (s *Scanner) accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.opts.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// excludedDir reports whether the directory at path, found while walking root, is excluded.
func (s *Scanner) excludedDir(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return s.excluded(filepath.ToSlash(rel))
}

// excluded reports whether a slash-separated directory path relative to the scanned root
// matches an exclude entry, either by its last element or by the whole path.
func (s *Scanner) excluded(rel string) bool {
	name := rel[strings.LastIndex(rel, "/")+1:]
	for _, entry := range s.opts.Exclude {
		entry = strings.Trim(filepath.ToSlash(filepath.Clean(entry)), "/")
		if entry == name || entry == rel {
			return true
		}
	}
	return false
}

// excludedPath reports whether any directory of a relative file path is excluded.
func (s *Scanner) excludedPath(rel string) bool {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return false
	}
	parts := strings.Split(dir, "/")
	for i := range parts {
		if s.excluded(strings.Join(parts[:i+1], "/")) {
			return true
		}
	}
	return false
}
