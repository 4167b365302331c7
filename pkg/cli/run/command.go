// Package run implements the 'bumpact run' command.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bumpact/bumpact/pkg/cli/flag"
	"github.com/bumpact/bumpact/pkg/config"
	"github.com/bumpact/bumpact/pkg/controller/update"
	"github.com/bumpact/bumpact/pkg/github"
	"github.com/bumpact/bumpact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// Flags holds the command line flags of the run command.
type Flags struct {
	Check      bool
	Diff       bool
	Fix        bool
	PR         bool
	Format     string
	RepoOwner  string
	RepoName   string
	BaseBranch string
	Branch     string
	Args       []string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	flags       *Flags
	stdout      io.Writer
	stderr      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout, stderr io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		flags:       &Flags{},
		stdout:      stdout,
		stderr:      stderr,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command { //nolint:funlen
	return &cli.Command{
		Name:  "run",
		Usage: "Update GitHub Actions versions",
		Description: `If no argument is passed, bumpact searches GitHub Actions workflow files from .github/workflows.

$ bumpact run

You can also pass workflow file paths as arguments.

e.g.

$ bumpact run .github/actions/foo/action.yaml .github/actions/bar/action.yaml
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Exit with a non-zero status code if actions are outdated. If this is true, files aren't updated",
				Destination: &r.flags.Check,
			},
			&cli.BoolFlag{
				Name:        "diff",
				Usage:       "Output diff. By default, this is false",
				Destination: &r.flags.Diff,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "Fix files. By default, this is true. If -check, -diff, or -pr is true, this is false by default",
				Destination: &r.flags.Fix,
			},
			&cli.BoolFlag{
				Name:        "pr",
				Usage:       "Create a pull request instead of updating files locally",
				Destination: &r.flags.PR,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format. Only 'sarif' is supported",
				Destination: &r.flags.Format,
			},
			&cli.StringFlag{
				Name:        "repo-owner",
				Usage:       "GitHub repository owner",
				Sources:     cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
				Destination: &r.flags.RepoOwner,
			},
			&cli.StringFlag{
				Name:        "repo-name",
				Usage:       "GitHub repository name",
				Destination: &r.flags.RepoName,
			},
			&cli.StringFlag{
				Name:        "base-branch",
				Usage:       "Base branch of the pull request",
				Destination: &r.flags.BaseBranch,
			},
			&cli.StringFlag{
				Name:        "branch",
				Usage:       "Branch the pull request is created from",
				Destination: &r.flags.Branch,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &r.flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}

	gh := github.New(ctx, r.logE)
	fs := afero.NewOsFs()

	var publish *update.Publish
	if r.flags.PR {
		publish = &update.Publish{
			RepoOwner:  r.flags.RepoOwner,
			RepoName:   r.flags.RepoName,
			BaseBranch: r.flags.BaseBranch,
			Branch:     r.flags.Branch,
		}
		if os.Getenv("GITHUB_ACTIONS") == "true" {
			setPublish(publish)
		}
		if !publish.Valid() {
			r.logE.Warn("skip creating a pull request because the repository information is incomplete")
			publish = nil
		}
	}

	param := &update.Param{
		WorkflowFilePaths: r.flags.Args,
		ConfigFilePath:    r.globalFlags.Config,
		PWD:               pwd,
		Check:             r.flags.Check,
		Diff:              r.flags.Diff,
		Fix:               true,
		Format:            r.flags.Format,
		Publish:           publish,
		Stdout:            r.stdout,
		Stderr:            r.stderr,
	}
	if c.IsSet("fix") {
		param.Fix = r.flags.Fix
	} else if param.Check || param.Diff || publish != nil {
		param.Fix = false
	}

	ctrl := update.New(&update.RepositoriesServiceImpl{
		Tags:                map[string]*update.ListTagsResult{},
		Releases:            map[string]*update.ListReleasesResult{},
		RepositoriesService: gh.Repositories,
	}, gh.Git, gh.PullRequests, fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

// setPublish fills missing repository information from the GitHub Actions
// environment.
func setPublish(publish *update.Publish) {
	if publish.RepoOwner == "" || publish.RepoName == "" {
		if owner, name, ok := strings.Cut(os.Getenv("GITHUB_REPOSITORY"), "/"); ok {
			if publish.RepoOwner == "" {
				publish.RepoOwner = owner
			}
			if publish.RepoName == "" {
				publish.RepoName = name
			}
		}
	}
	if publish.BaseBranch == "" {
		publish.BaseBranch = os.Getenv("GITHUB_REF_NAME")
	}
}
