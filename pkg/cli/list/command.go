// Package list implements the 'bumpact list' command.
package list

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/bumpact/bumpact/pkg/cli/flag"
	"github.com/bumpact/bumpact/pkg/config"
	"github.com/bumpact/bumpact/pkg/controller/list"
	"github.com/bumpact/bumpact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// Flags holds the command line flags of the list command.
type Flags struct {
	Owner        string
	LineTemplate string
	Include      []string
	Exclude      []string
	Args         []string
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	flags       *Flags
	stdout      io.Writer
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		flags:       &Flags{},
		stdout:      stdout,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command { //nolint:funlen
	return &cli.Command{
		Name:  "list",
		Usage: "List GitHub Actions and reusable workflows",
		Description: `List GitHub Actions and reusable workflows from workflow files.

$ bumpact list

Output format (default CSV):
<FilePath>,<LineNumber>,<ActionName>,<Version>,<Comment>

Filter by owner:
$ bumpact list --owner actions

Custom output format using Go template:
$ bumpact list --line-template "{{.RepoOwner}}/{{.RepoName}}"

Available template fields:
  ActionName - Full action name (e.g., actions/checkout)
  RepoOwner  - Repository owner (e.g., actions)
  RepoName   - Repository name (e.g., checkout)
  Version    - Version/ref (e.g., v4 or commit SHA)
  Comment    - Version comment
  FilePath   - Full file path
  FileName   - Base file name
  LineNumber - Line number in the file
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Filter actions by owner",
				Destination: &r.flags.Owner,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &r.flags.LineTemplate,
			},
			&cli.StringSliceFlag{
				Name:        "include",
				Aliases:     []string{"i"},
				Usage:       "A regular expression to include actions",
				Destination: &r.flags.Include,
			},
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"e"},
				Usage:       "A regular expression to exclude actions",
				Destination: &r.flags.Exclude,
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

func (r *runner) action(ctx context.Context, _ *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)

	includes, err := compilePatterns(r.flags.Include)
	if err != nil {
		return fmt.Errorf("compile include patterns: %w", err)
	}
	excludes, err := compilePatterns(r.flags.Exclude)
	if err != nil {
		return fmt.Errorf("compile exclude patterns: %w", err)
	}

	fs := afero.NewOsFs()
	cfgPath, cfg, err := readConfig(fs, r.globalFlags.Config)
	if err != nil {
		return err
	}

	param := &list.Param{
		WorkflowFilePaths: r.flags.Args,
		ConfigFilePath:    cfgPath,
		Owner:             r.flags.Owner,
		LineTemplate:      r.flags.LineTemplate,
		Includes:          includes,
		Excludes:          excludes,
	}

	ctrl := list.New(fs, cfg, param, r.stdout)
	return ctrl.List(ctx, r.logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (string, *config.Config, error) {
	cfgPath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return "", nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, cfgPath); err != nil {
		return "", nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfgPath, cfg, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile a regular expression %q: %w", pattern, err)
		}
		result = append(result, re)
	}
	return result, nil
}
