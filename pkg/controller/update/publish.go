package update

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bumpact/bumpact/pkg/github"
	"github.com/sirupsen/logrus"
)

const (
	blobMode = "100644"
	blobType = "blob"

	defaultBranch = "bumpact-update-actions"
)

// publish commits the updated workflow files to a new branch and opens a
// pull request instead of writing them locally.
func (c *Controller) publish(ctx context.Context, logE *logrus.Entry, changed map[string]string) error {
	pub := c.param.Publish
	branch := pub.Branch
	if branch == "" {
		branch = defaultBranch
	}

	exists, err := c.pullRequestExists(ctx, pub, branch)
	if err != nil {
		return err
	}
	if exists {
		logE.WithField("branch", branch).Info("skip publishing because an open pull request already exists")
		return nil
	}

	sha, err := c.createBranch(ctx, pub, branch, changed)
	if err != nil {
		return err
	}

	pr, _, err := c.pullRequestsService.Create(ctx, pub.RepoOwner, pub.RepoName, &github.NewPullRequest{
		Title:               github.Ptr("chore(deps): update GitHub Actions"),
		Head:                github.Ptr(branch),
		Base:                github.Ptr(strings.TrimPrefix(pub.BaseBranch, "refs/heads/")),
		Body:                github.Ptr(c.pullRequestBody()),
		MaintainerCanModify: github.Ptr(true),
	})
	if err != nil {
		return fmt.Errorf("create a pull request: %w", err)
	}
	logE.WithFields(logrus.Fields{
		"pull_request": pr.GetHTMLURL(),
		"commit":       sha,
	}).Info("created a pull request")
	return nil
}

func (c *Controller) pullRequestExists(ctx context.Context, pub *Publish, branch string) (bool, error) {
	prs, _, err := c.pullRequestsService.List(ctx, pub.RepoOwner, pub.RepoName, &github.PullRequestListOptions{
		Head:  pub.RepoOwner + ":" + branch,
		State: "open",
	})
	if err != nil {
		return false, fmt.Errorf("list pull requests: %w", err)
	}
	return len(prs) > 0, nil
}

// createBranch creates a commit containing the changed files on top of the
// base branch and points a new branch at it. It returns the commit SHA.
func (c *Controller) createBranch(ctx context.Context, pub *Publish, branch string, changed map[string]string) (string, error) {
	base := strings.TrimPrefix(pub.BaseBranch, "refs/heads/")
	baseRef, _, err := c.gitService.GetRef(ctx, pub.RepoOwner, pub.RepoName, "refs/heads/"+base)
	if err != nil {
		return "", fmt.Errorf("get the base branch ref: %w", err)
	}
	baseSHA := baseRef.GetObject().GetSHA()

	baseCommit, _, err := c.gitService.GetCommit(ctx, pub.RepoOwner, pub.RepoName, baseSHA)
	if err != nil {
		return "", fmt.Errorf("get the base commit: %w", err)
	}

	entries := make([]*github.TreeEntry, 0, len(changed))
	for _, p := range sortedPaths(changed) {
		entries = append(entries, &github.TreeEntry{
			Path:    github.Ptr(strings.TrimPrefix(p, "/")),
			Mode:    github.Ptr(blobMode),
			Type:    github.Ptr(blobType),
			Content: github.Ptr(changed[p]),
		})
	}
	tree, _, err := c.gitService.CreateTree(ctx, pub.RepoOwner, pub.RepoName, baseCommit.GetTree().GetSHA(), entries)
	if err != nil {
		return "", fmt.Errorf("create a tree: %w", err)
	}

	commit, _, err := c.gitService.CreateCommit(ctx, pub.RepoOwner, pub.RepoName, &github.Commit{
		Message: github.Ptr(c.commitMessage()),
		Tree:    tree,
		Parents: []*github.Commit{{SHA: github.Ptr(baseSHA)}},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("create a commit: %w", err)
	}

	if _, _, err := c.gitService.CreateRef(ctx, pub.RepoOwner, pub.RepoName, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: commit.SHA},
	}); err != nil {
		return "", fmt.Errorf("create a branch: %w", err)
	}
	return commit.GetSHA(), nil
}

func (c *Controller) commitMessage() string {
	return "chore(deps): update GitHub Actions"
}

func (c *Controller) pullRequestBody() string {
	b := strings.Builder{}
	b.WriteString("This pull request was created by [bumpact](https://github.com/bumpact/bumpact).\n\n")
	for _, f := range c.findings {
		if f.NewVersion == "" {
			continue
		}
		fmt.Fprintf(&b, "- `%s`: `%s` -> `%s` (%s:%d)\n", f.Action, f.OldVersion, f.NewVersion, f.File, f.Line)
	}
	return b.String()
}

func sortedPaths(changed map[string]string) []string {
	paths := make([]string, 0, len(changed))
	for p := range changed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
