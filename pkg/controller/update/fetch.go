package update

import (
	"context"
	"fmt"

	"github.com/bumpact/bumpact/pkg/github"
	"github.com/bumpact/bumpact/pkg/version"
	goversion "github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	perPage  = 100
	maxPages = 10
)

// listVersions fetches the candidate catalog for one repository.
// Release tag names are preferred because repositories often tag commits
// that are never released; when a repository publishes no releases, tags are
// used instead. Strings outside the version grammar are dropped by the
// catalog itself.
func (c *Controller) listVersions(ctx context.Context, logE *logrus.Entry, owner, repo string, current *version.Spec) (*version.Catalog, error) {
	isStable := isStableVersion(current.String())
	raws, err := c.listReleaseNames(ctx, owner, repo, isStable)
	if err != nil {
		logerr.WithError(logE, err).Debug("list releases")
	}
	if len(raws) == 0 {
		raws, err = c.listTagNames(ctx, owner, repo, isStable)
		if err != nil {
			return nil, err
		}
	}
	return version.NewCatalog(raws), nil
}

func (c *Controller) listReleaseNames(ctx context.Context, owner, repo string, isStable bool) ([]string, error) {
	opts := &github.ListOptions{
		PerPage: perPage,
	}
	raws := []string{}
	for range maxPages {
		releases, _, err := c.repositoriesService.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list releases: %w", err)
		}
		for _, release := range releases {
			if release.GetDraft() {
				continue
			}
			if isStable && release.GetPrerelease() {
				continue
			}
			raws = append(raws, release.GetTagName())
		}
		if len(releases) < opts.PerPage {
			return raws, nil
		}
		opts.Page++
	}
	return raws, nil
}

func (c *Controller) listTagNames(ctx context.Context, owner, repo string, isStable bool) ([]string, error) {
	opts := &github.ListOptions{
		PerPage: perPage,
	}
	raws := []string{}
	for range maxPages {
		tags, _, err := c.repositoriesService.ListTags(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		for _, tag := range tags {
			t := tag.GetName()
			if isStable {
				if tv, err := goversion.NewVersion(t); err == nil && tv.Prerelease() != "" {
					continue
				}
			}
			raws = append(raws, t)
		}
		if len(tags) < opts.PerPage {
			return raws, nil
		}
		opts.Page++
	}
	return raws, nil
}

func isStableVersion(v string) bool {
	cv, err := goversion.NewVersion(v)
	return err == nil && cv.Prerelease() == ""
}
