package git

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ChangedFiles returns absolute paths of files under target that the enclosing repository
// reports as modified, added, renamed or untracked. Deleted files are left out.
func ChangedFiles(target string) ([]string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", target, err)
	}

	root, err := findRepositoryRoot(absTarget)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", root, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree of %q: %w", root, err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	var changed []string
	for file, st := range status {
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}

		abs := filepath.Join(root, filepath.FromSlash(file))
		if !within(absTarget, abs) {
			continue
		}
		changed = append(changed, abs)
	}

	sort.Strings(changed)
	return changed, nil
}

// findRepositoryRoot walks up from path until it finds a directory that opens as a repository.
func findRepositoryRoot(path string) (string, error) {
	dir := path
	for {
		if _, err := git.PlainOpen(dir); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%q: %w", path, ErrNotRepository)
		}
		dir = parent
	}
}

func within(root, path string) bool {
	if root == path {
		return true
	}
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
