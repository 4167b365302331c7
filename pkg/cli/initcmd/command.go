// Package initcmd implements the 'bumpact init' command.
package initcmd

import (
	"context"

	"github.com/bumpact/bumpact/pkg/cli/flag"
	"github.com/bumpact/bumpact/pkg/controller/initcmd"
	"github.com/bumpact/bumpact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	args        []string
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
		Name:  "init",
		Usage: "Create .bumpact.yaml if it doesn't exist",
		Description: `Create .bumpact.yaml if it doesn't exist

$ bumpact init

You can also pass a configuration file path.

e.g.

$ bumpact init .github/bumpact.yaml
`,
		Action: r.action,
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "path",
				Max:         1,
				Destination: &r.args,
			},
		},
	}
}

func (r *runner) action(_ context.Context, _ *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := ""
	if len(r.args) != 0 {
		configFilePath = r.args[0]
	}
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".bumpact.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
