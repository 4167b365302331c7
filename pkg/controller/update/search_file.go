package update

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func (c *Controller) searchFiles(logE *logrus.Entry) ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig(logE)
	}
	return ListWorkflows()
}

func (c *Controller) searchFilesByConfig(logE *logrus.Entry) ([]string, error) {
	files := []string{}
	if err := fs.WalkDir(afero.NewIOFS(c.fs), c.param.PWD, func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			return nil
		}
		filePath, err := filepath.Rel(c.param.PWD, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  c.param.PWD,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		for _, file := range c.cfg.Files {
			f, err := file.Match(filePath)
			if err != nil {
				return fmt.Errorf("match a file path: %w", err)
			}
			if f {
				files = append(files, filePath)
				break
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk the current directory: %w", err)
	}
	return files, nil
}
