package migrate

import (
	"fmt"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Migrate rewrites the configuration file to the latest schema version.
// It is a no-op when no configuration file exists or the file is already
// up to date.
func (c *Controller) Migrate(logE *logrus.Entry) error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	if p == "" {
		logE.Warn("no configuration file is found")
		return nil
	}
	c.param.ConfigFilePath = p

	content, err := afero.ReadFile(c.fs, p)
	if err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse a configuration file: %w", err)
	}
	c.cfg = cfg

	s, err := c.migrate(content)
	if err != nil {
		return err
	}
	if s == "" {
		logE.Info("the configuration file is up to date")
		return nil
	}
	if err := c.edit(c.param.ConfigFilePath, s); err != nil {
		return fmt.Errorf("edit the configuration file: %w", err)
	}
	return nil
}

func (c *Controller) edit(file, content string) error {
	stat, err := c.fs.Stat(file)
	if err != nil {
		return fmt.Errorf("get configuration file stat: %w", err)
	}
	if err := afero.WriteFile(c.fs, file, []byte(content), stat.Mode()); err != nil {
		return fmt.Errorf("write the configuration file: %w", err)
	}
	return nil
}

func (c *Controller) migrate(content []byte) (string, error) {
	switch c.cfg.Version {
	case 0:
		return parseConfigAST(content)
	case 1:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported configuration version: %d", c.cfg.Version)
	}
}
