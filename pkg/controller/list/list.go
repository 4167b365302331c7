package list

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bumpact/bumpact/pkg/controller/update"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// List searches workflow files and writes one entry per action reference.
func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.listWorkflow(logE, workflowFilePath, tmpl); err != nil {
			logerr.WithError(logE, err).Error("list actions in a workflow")
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse a line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if c.cfg != nil && len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	files, err := update.ListWorkflows()
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return files, nil
}

func (c *Controller) searchFilesByGlob() ([]string, error) {
	files := []string{}
	configFileDir := filepath.Dir(c.param.ConfigFilePath)
	for _, file := range c.cfg.Files {
		matches, err := filepath.Glob(filepath.Join(configFileDir, file.Pattern))
		if err != nil {
			return nil, fmt.Errorf("search target files: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func (c *Controller) listWorkflow(logE *logrus.Entry, workflowFilePath string, tmpl *template.Template) error {
	lines, err := c.readWorkflow(workflowFilePath)
	if err != nil {
		return err
	}

	for i, line := range lines {
		action := update.ParseAction(line)
		if action == nil {
			continue
		}
		if !parseActionName(action) {
			continue
		}
		if c.filtered(action) {
			logE.WithField("action", action.Name).Debug("filter out the action")
			continue
		}

		info := &ActionInfo{
			ActionName: action.Name,
			RepoOwner:  action.RepoOwner,
			RepoName:   action.RepoName,
			Version:    action.Version,
			Comment:    action.VersionComment,
			FilePath:   workflowFilePath,
			FileName:   filepath.Base(workflowFilePath),
			LineNumber: i + 1,
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) output(info *ActionInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute a line template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <FilePath>,<LineNumber>,<ActionName>,<Version>,<Comment>
	fmt.Fprintf(c.stdout, "%s,%d,%s,%s,%s\n", info.FilePath, info.LineNumber, info.ActionName, info.Version, info.Comment)
	return nil
}

func (c *Controller) readWorkflow(workflowFilePath string) ([]string, error) {
	f, err := c.fs.Open(workflowFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a workflow file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a workflow file: %w", err)
	}
	return lines, nil
}

func parseActionName(action *update.Action) bool {
	a := strings.Split(action.Name, "/")
	if len(a) < 2 { //nolint:mnd
		return false
	}
	action.RepoOwner = a[0]
	action.RepoName = a[1]
	return true
}

// filtered applies the owner filter and the include/exclude patterns.
// Excludes win over includes; an empty include list includes everything.
func (c *Controller) filtered(action *update.Action) bool {
	if c.param.Owner != "" && action.RepoOwner != c.param.Owner {
		return true
	}
	for _, exclude := range c.param.Excludes {
		if exclude.MatchString(action.Name) {
			return true
		}
	}
	if len(c.param.Includes) == 0 {
		return false
	}
	for _, include := range c.param.Includes {
		if include.MatchString(action.Name) {
			return false
		}
	}
	return true
}
