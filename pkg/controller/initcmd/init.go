// Package initcmd scaffolds a new configuration file.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/bumpact/bumpact/refs/heads/main/json-schema/bumpact.json
# bumpact - https://github.com/bumpact/bumpact
version: 1
# files:
#   - pattern: .github/workflows/*.yml
#   - pattern: "*/action.yaml"

ignore_actions:
# - name: actions/checkout
# - name: actions/.*
#   name_format: regexp
# - name: suzuki-shunsuke/.*
#   name_format: regexp
#   ref: v1\..*
#   ref_format: regexp
`
	filePermission os.FileMode = 0o644
)

// Init creates the configuration file unless it already exists.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
