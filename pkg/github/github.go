// Package github wraps the GitHub API client used to list published versions
// and to publish update pull requests.
// It handles authentication via the GITHUB_TOKEN environment variable or the
// OS keyring, and exposes type aliases so other packages don't import
// go-github directly.
package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type (
	ListOptions            = github.ListOptions
	Reference              = github.Reference
	Response               = github.Response
	Repository             = github.Repository
	RepositoryTag          = github.RepositoryTag
	RepositoryRelease      = github.RepositoryRelease
	Client                 = github.Client
	GitObject              = github.GitObject
	Commit                 = github.Commit
	Tree                   = github.Tree
	TreeEntry              = github.TreeEntry
	CreateCommitOptions    = github.CreateCommitOptions
	NewPullRequest         = github.NewPullRequest
	PullRequest            = github.PullRequest
	PullRequestListOptions = github.PullRequestListOptions
)

// New creates a GitHub API client.
// Authentication falls back from the GITHUB_TOKEN environment variable to the
// OS keyring (when BUMPACT_KEYRING_ENABLED is true) to anonymous access.
func New(ctx context.Context, logE *logrus.Entry) *Client {
	return github.NewClient(newHTTPClient(ctx, logE, os.Getenv("GITHUB_TOKEN")))
}

// Ptr returns a pointer to the given value.
// go-github represents optional fields as pointers.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func keyringEnabled() bool {
	return os.Getenv("BUMPACT_KEYRING_ENABLED") == "true"
}

func newHTTPClient(ctx context.Context, logE *logrus.Entry, token string) *http.Client {
	if token == "" {
		if keyringEnabled() {
			return oauth2.NewClient(ctx, NewKeyringTokenSource(logE))
		}
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
