// Package migrate implements the 'bumpact migrate' command.
package migrate

import (
	"context"

	"github.com/bumpact/bumpact/pkg/cli/flag"
	"github.com/bumpact/bumpact/pkg/config"
	"github.com/bumpact/bumpact/pkg/controller/migrate"
	"github.com/bumpact/bumpact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Migrate .bumpact.yaml",
		Description: `Migrate .bumpact.yaml to the latest schema version

$ bumpact migrate
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, _ *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	fs := afero.NewOsFs()
	ctrl := migrate.New(fs, config.NewFinder(fs), &migrate.Param{
		ConfigFilePath: r.globalFlags.Config,
	})
	return ctrl.Migrate(r.logE) //nolint:wrapcheck
}
