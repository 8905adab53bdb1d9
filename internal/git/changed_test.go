package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedFiles(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commitFiles(t, wt, map[string]string{
		"src/App.tsx":     `<div className="p-4" />`,
		"src/Button.tsx":  `<button className="font-normal" />`,
		"src/Old.tsx":     `<p />`,
		"docs/readme.tsx": `<p />`,
	}, "initial")

	writeFile(t, root, "src/App.tsx", `<div className="p-[25px]" />`)
	writeFile(t, root, "src/New.tsx", `<div className="font-light" />`)
	writeFile(t, root, "docs/guide.tsx", `<p />`)
	require.NoError(t, os.Remove(filepath.Join(root, "src", "Old.tsx")))

	changed, err := ChangedFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "docs", "guide.tsx"),
		filepath.Join(root, "src", "App.tsx"),
		filepath.Join(root, "src", "New.tsx"),
	}, changed)

	changed, err = ChangedFiles(filepath.Join(root, "src"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "App.tsx"),
		filepath.Join(root, "src", "New.tsx"),
	}, changed)
}

func TestChangedFilesCleanWorktree(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	commitFiles(t, wt, map[string]string{"App.tsx": "<div />"}, "initial")

	changed, err := ChangedFiles(root)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestChangedFilesOutsideRepository(t *testing.T) {
	_, err := ChangedFiles(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestWithin(t *testing.T) {
	root := filepath.Join("/", "repo", "src")
	assert.True(t, within(root, root))
	assert.True(t, within(root, filepath.Join(root, "a.tsx")))
	assert.False(t, within(root, filepath.Join("/", "repo", "srcx", "a.tsx")))
	assert.False(t, within(root, filepath.Join("/", "repo", "a.tsx")))
}

func writeFile(t *testing.T, root, path, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func commitFiles(t *testing.T, wt *git.Worktree, files map[string]string, message string) {
	t.Helper()

	for path, content := range files {
		writeFile(t, wt.Filesystem.Root(), path, content)
		if _, err := wt.Add(path); err != nil {
			t.Fatalf("add %s: %v", path, err)
		}
	}

	_, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
}
