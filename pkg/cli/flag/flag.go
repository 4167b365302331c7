// Package flag holds the global flags every subcommand reads through a
// shared GlobalFlags value instead of the cli.Command.
package flag

import "github.com/urfave/cli/v3"

// GlobalFlags is bound as the flag destinations of the root command, so
// subcommand runners read the parsed values directly.
type GlobalFlags struct {
	LogLevel string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level of bumpact (debug, info, warn, error)",
			Sources:     cli.EnvVars("BUMPACT_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path (default: .bumpact.yaml or .github/bumpact.yaml)",
			Sources:     cli.EnvVars("BUMPACT_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
