// Package ci discovers which revision of which repository a CI job is validating.
package ci

import (
	"net/url"
	"os"
	"strings"
)

// Kind represents the type of CI.
type Kind int

const (
	Unknown Kind = iota
	GitHub
	GitLab
	Bitbucket
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// Environment is the repository state a CI job runs on.
type Environment struct {
	Kind          Kind
	RepositoryURL string // RepositoryURL is the web URL of the repository.
	CommitHash    string
	Reference     string // Reference is the fully qualified git reference (e.g. refs/heads/main).
	Branch        string // Branch is the short branch or tag name, empty for merge request refs.
}

// String returns the human-readable string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case GitHub:
		return "github"
	case GitLab:
		return "gitlab"
	case Bitbucket:
		return "bitbucket"
	default:
		return "unknown"
	}
}

// Detect reads the CI environment of the current process.
// The second return value is false outside of a supported CI provider.
func Detect() (Environment, bool) {
	return detectWithLookup(os.Getenv)
}

func detectWithLookup(lookup LookupFunc) (Environment, bool) {
	if lookup == nil {
		lookup = os.Getenv
	}

	switch {
	case lookup("GITHUB_REPOSITORY") != "" || lookup("GITHUB_SHA") != "":
		return gitHubEnvironment(lookup), true
	case strings.EqualFold(lookup("GITLAB_CI"), "true") || lookup("CI_PROJECT_PATH") != "":
		return gitLabEnvironment(lookup), true
	case lookup("BITBUCKET_WORKSPACE") != "" || lookup("BITBUCKET_REPO_SLUG") != "":
		return bitbucketEnvironment(lookup), true
	default:
		return Environment{}, false
	}
}

// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
func gitHubEnvironment(lookup LookupFunc) Environment {
	env := Environment{
		Kind:       GitHub,
		CommitHash: lookup("GITHUB_SHA"),
		Reference:  lookup("GITHUB_REF"),
	}

	if fullName, serverURL := lookup("GITHUB_REPOSITORY"), lookup("GITHUB_SERVER_URL"); fullName != "" && serverURL != "" {
		env.RepositoryURL = strings.TrimSuffix(serverURL, "/") + "/" + fullName
	}
	if !strings.HasPrefix(env.Reference, "refs/pull/") {
		env.Branch = lookup("GITHUB_REF_NAME")
	}
	return env
}

// See https://docs.gitlab.com/ci/variables/predefined_variables/.
func gitLabEnvironment(lookup LookupFunc) Environment {
	env := Environment{
		Kind:          GitLab,
		CommitHash:    lookup("CI_COMMIT_SHA"),
		RepositoryURL: lookup("CI_PROJECT_URL"),
	}

	if tag := lookup("CI_COMMIT_TAG"); tag != "" {
		env.Reference = "refs/tags/" + tag
		env.Branch = tag
	} else if mrRef := lookup("CI_MERGE_REQUEST_REF_PATH"); mrRef != "" {
		env.Reference = mrRef
	} else if refName := lookup("CI_COMMIT_REF_NAME"); refName != "" {
		env.Reference = "refs/heads/" + refName
		env.Branch = refName
	}
	return env
}

// See https://support.atlassian.com/bitbucket-cloud/docs/variables-and-secrets/.
func bitbucketEnvironment(lookup LookupFunc) Environment {
	env := Environment{
		Kind:       Bitbucket,
		CommitHash: lookup("BITBUCKET_COMMIT"),
	}

	if tag := lookup("BITBUCKET_TAG"); tag != "" {
		env.Reference = "refs/tags/" + tag
		env.Branch = tag
	} else if branch := lookup("BITBUCKET_BRANCH"); branch != "" {
		env.Reference = "refs/heads/" + branch
		env.Branch = branch
	} else if pr := lookup("BITBUCKET_PR_ID"); pr != "" {
		env.Reference = "refs/pull/" + pr
	}

	// The origin may carry credentials in CI; only scheme, host and path are kept.
	if u, err := url.Parse(lookup("BITBUCKET_GIT_HTTP_ORIGIN")); err == nil && u.Scheme != "" && u.Host != "" {
		env.RepositoryURL = u.Scheme + "://" + u.Host + u.Path
	}
	return env
}
