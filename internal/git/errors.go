package git

import "errors"

// ErrNotRepository is returned for paths outside of any git worktree.
var ErrNotRepository = errors.New("path is not inside a git repository")
