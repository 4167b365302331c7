// Package update implements the core business logic of bumpact.
// The controller scans workflow files for pinned action references, asks the
// GitHub API for published versions, resolves precision-preserving upgrade
// targets, and applies the edits: in place, as a diff, as SARIF findings, or
// as a branch with a pull request.
package update

import (
	"context"
	"io"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/bumpact/bumpact/pkg/github"
	"github.com/spf13/afero"
)

type Controller struct {
	repositoriesService RepositoriesService
	gitService          GitService
	pullRequestsService PullRequestsService
	fs                  afero.Fs
	cfg                 *config.Config
	param               *Param
	cfgFinder           ConfigFinder
	cfgReader           ConfigReader
	logger              *Logger
	findings            []*Finding
}

// RepositoriesService is the subset of the GitHub Repositories API the
// controller fetches candidate versions with.
type RepositoriesService interface {
	ListTags(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryTag, *github.Response, error)
	ListReleases(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error)
}

// GitService is the subset of the GitHub Git data API the publisher commits
// branches with.
type GitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, *github.Response, error)
	CreateTree(ctx context.Context, owner, repo, baseTree string, entries []*github.TreeEntry) (*github.Tree, *github.Response, error)
	CreateCommit(ctx context.Context, owner, repo string, commit *github.Commit, opts *github.CreateCommitOptions) (*github.Commit, *github.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error)
}

// PullRequestsService is the subset of the GitHub Pull Requests API the
// publisher opens pull requests with.
type PullRequestsService interface {
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

// Param holds the runtime options of one update pass.
type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
	Check             bool
	Diff              bool
	Fix               bool
	Format            string
	Publish           *Publish
	Stdout            io.Writer
	Stderr            io.Writer
}

// Publish identifies the repository an update pull request is created in.
type Publish struct {
	RepoOwner  string
	RepoName   string
	BaseBranch string
	Branch     string
}

// Valid reports whether the publish parameters are complete.
func (p *Publish) Valid() bool {
	return p != nil && p.RepoOwner != "" && p.RepoName != "" && p.BaseBranch != ""
}

func New(repositoriesService RepositoriesService, gitService GitService, pullRequestsService PullRequestsService, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *Param) *Controller {
	return &Controller{
		repositoriesService: repositoriesService,
		gitService:          gitService,
		pullRequestsService: pullRequestsService,
		fs:                  fs,
		cfg:                 &config.Config{},
		param:               param,
		cfgFinder:           cfgFinder,
		cfgReader:           cfgReader,
		logger:              NewLogger(param.Stderr),
	}
}
