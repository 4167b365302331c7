// Package list implements the 'bumpact list' command.
// It enumerates GitHub Actions and reusable workflow references found in
// workflow files, with owner filtering and custom output templates.
package list

import (
	"io"
	"regexp"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/spf13/afero"
)

// Controller handles the list command operations.
type Controller struct {
	fs     afero.Fs
	cfg    *config.Config
	param  *Param
	stdout io.Writer
}

// Param contains parameters for the list command.
type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Owner             string
	LineTemplate      string
	Includes          []*regexp.Regexp
	Excludes          []*regexp.Regexp
}

// New creates a new Controller for running list operations.
func New(fs afero.Fs, cfg *config.Config, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		fs:     fs,
		cfg:    cfg,
		param:  param,
		stdout: stdout,
	}
}

// ActionInfo is one action reference passed to the output template.
type ActionInfo struct {
	ActionName string // Full action name (owner/repo or owner/repo/path)
	RepoOwner  string // Repository owner
	RepoName   string // Repository name
	Version    string // Version/ref (tag, branch, or commit SHA)
	Comment    string // Trailing version comment, if any
	FilePath   string // Full path to the workflow file
	FileName   string // Base name of the workflow file
	LineNumber int    // Line number in the file
}
