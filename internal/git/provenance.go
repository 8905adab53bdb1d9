package git

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/gitsight/go-vcsurl"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Provenance identifies the revision of the repository a scanned path belongs to.
type Provenance struct {
	RepositoryURL string
	Revision      string
	Branch        string
}

// ReadProvenance reads HEAD and the origin remote of the repository enclosing target.
// A repository without commits or without an origin remote yields partial provenance.
func ReadProvenance(target string) (Provenance, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return Provenance{}, fmt.Errorf("failed to resolve %q: %w", target, err)
	}

	root, err := findRepositoryRoot(absTarget)
	if err != nil {
		return Provenance{}, err
	}
	repo, err := git.PlainOpen(root)
	if err != nil {
		return Provenance{}, fmt.Errorf("failed to open repository %q: %w", root, err)
	}

	var p Provenance
	head, err := repo.Head()
	switch {
	case err == nil:
		p.Revision = head.Hash().String()
		if head.Name().IsBranch() {
			p.Branch = head.Name().Short()
		}
	case !errors.Is(err, plumbing.ErrReferenceNotFound):
		return Provenance{}, fmt.Errorf("failed to read HEAD: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	switch {
	case err == nil && len(remote.Config().URLs) > 0:
		p.RepositoryURL = webURL(remote.Config().URLs[0])
	case err != nil && !errors.Is(err, git.ErrRemoteNotFound):
		return Provenance{}, fmt.Errorf("failed to read remote %q: %w", git.DefaultRemoteName, err)
	}
	return p, nil
}

// webURL turns SSH remotes of known hosting services into HTTPS URLs and drops credentials from HTTP remotes.
// Remotes it cannot interpret are returned unchanged.
func webURL(remote string) string {
	if u, err := url.Parse(remote); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return redactURL(remote)
	}
	info, err := vcsurl.Parse(remote)
	if err != nil || info.Host == "" || info.FullName == "" {
		return remote
	}
	return fmt.Sprintf("https://%s/%s", info.Host, info.FullName)
}

// redactURL drops credentials from HTTP remotes. SSH remotes are kept as is.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil || (u.Scheme != "http" && u.Scheme != "https") {
		return raw
	}
	u.User = nil
	return u.String()
}
