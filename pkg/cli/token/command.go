// Package token implements the 'bumpact token' command.
// It stores and removes the GitHub access token using the OS secret store,
// so tokens don't have to live in environment variables.
package token

import (
	"context"
	"io"

	"github.com/bumpact/bumpact/pkg/controller/token"
	"github.com/bumpact/bumpact/pkg/github"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE  *logrus.Entry
	stdin io.Reader
}

func New(logE *logrus.Entry, stdin io.Reader) *cli.Command {
	r := &runner{
		logE:  logE,
		stdin: stdin,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the GitHub access token in the secret store",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store a GitHub access token. The token is read from stdin",
				Description: `Store a GitHub access token in the secret store.

$ gh auth token | bumpact token set
`,
				Action: r.setAction,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove the GitHub access token from the secret store",
				Action:  r.removeAction,
			},
		},
	}
}

func (r *runner) setAction(_ context.Context, _ *cli.Command) error {
	ctrl := token.New(r.stdin, github.NewTokenManager())
	return ctrl.Set() //nolint:wrapcheck
}

func (r *runner) removeAction(_ context.Context, _ *cli.Command) error {
	ctrl := token.New(r.stdin, github.NewTokenManager())
	return ctrl.Remove() //nolint:wrapcheck
}
