// Package cli assembles the command line interface.
package cli

import (
	"context"
	"io"

	"github.com/bumpact/bumpact/pkg/cli/flag"
	"github.com/bumpact/bumpact/pkg/cli/initcmd"
	"github.com/bumpact/bumpact/pkg/cli/list"
	"github.com/bumpact/bumpact/pkg/cli/migrate"
	"github.com/bumpact/bumpact/pkg/cli/run"
	"github.com/bumpact/bumpact/pkg/cli/token"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

// LDFlags is set via go build -ldflags at release time.
type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "bumpact",
		Usage:                 "Keep GitHub Actions versions up to date. https://github.com/bumpact/bumpact",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 globalFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(r.LogE, globalFlags, r.Stdout, r.Stderr),
			initcmd.New(r.LogE, globalFlags),
			list.New(r.LogE, globalFlags, r.Stdout),
			migrate.New(r.LogE, globalFlags),
			token.New(r.LogE, r.Stdin),
			{
				Name:  "version",
				Usage: "Show the bumpact version",
				Action: func(_ context.Context, c *cli.Command) error {
					cli.ShowVersion(c)
					return nil
				},
			},
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
