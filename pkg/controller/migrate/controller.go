// Package migrate upgrades configuration files to the latest schema version.
// Old configuration files treated name and ref of ignore_actions as regular
// expressions. Version 1 defaults to fixed strings, so migration makes the
// legacy interpretation explicit and records the schema version.
package migrate

import (
	"github.com/bumpact/bumpact/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *Param
	cfgFinder ConfigFinder
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type Param struct {
	ConfigFilePath string
}

func New(fs afero.Fs, cfgFinder ConfigFinder, param *Param) *Controller {
	return &Controller{
		param:     param,
		fs:        fs,
		cfg:       &config.Config{},
		cfgFinder: cfgFinder,
	}
}
