package update

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ErrActionsOutdated is returned in check mode when at least one pinned
// action has a newer version. It maps to a non-zero exit code.
var ErrActionsOutdated = errors.New("actions are outdated")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	workflowFilePaths, err := c.searchFiles(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}

	// changed maps a workflow file path to its updated content.
	changed := map[string]string{}
	failed := false
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		content, err := c.runWorkflow(ctx, logE, workflowFilePath)
		if err != nil {
			failed = true
			logerr.WithError(logE, err).Error("update a workflow")
			continue
		}
		if content == "" {
			continue
		}
		changed[workflowFilePath] = content
	}

	if c.param.Format == formatSARIF {
		if err := c.outputSARIF(); err != nil {
			return err
		}
	}

	if len(changed) > 0 {
		if err := c.apply(ctx, logE, changed); err != nil {
			return err
		}
	}

	if c.param.Check && len(changed) > 0 {
		return ErrActionsOutdated
	}
	if failed {
		return errors.New("failed to process some workflow files")
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	if err := c.cfgReader.Read(c.cfg, p); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	return nil
}

// apply writes the updated workflow files, either locally or to a new branch
// with a pull request.
func (c *Controller) apply(ctx context.Context, logE *logrus.Entry, changed map[string]string) error {
	if c.param.Publish.Valid() {
		return c.publish(ctx, logE, changed)
	}
	if !c.param.Fix {
		return nil
	}
	for p, content := range changed {
		if err := c.writeWorkflow(p, content); err != nil {
			return err
		}
	}
	return nil
}

// runWorkflow processes a single workflow file and returns the updated
// content, or an empty string when nothing changed.
func (c *Controller) runWorkflow(ctx context.Context, logE *logrus.Entry, workflowFilePath string) (string, error) {
	lines, err := c.readWorkflow(workflowFilePath)
	if err != nil {
		return "", err
	}
	changed := false
	for i, line := range lines {
		logE := logE.WithField("line_number", i+1)
		l, err := c.parseLine(ctx, logE, line, workflowFilePath, i+1)
		if err != nil {
			logerr.WithError(logE, err).Error("parse a line")
			c.addFinding(&Finding{
				File:    workflowFilePath,
				Line:    i + 1,
				OldLine: line,
				Message: err.Error(),
			})
			continue
		}
		if l == "" || line == l {
			continue
		}
		changed = true
		lines[i] = l
	}
	if !changed {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func (c *Controller) readWorkflow(workflowFilePath string) ([]string, error) {
	workflowReadFile, err := c.fs.Open(workflowFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a workflow file: %w", err)
	}
	defer workflowReadFile.Close()
	scanner := bufio.NewScanner(workflowReadFile)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a workflow file: %w", err)
	}
	return lines, nil
}

func (c *Controller) writeWorkflow(workflowFilePath, content string) error {
	if err := afero.WriteFile(c.fs, workflowFilePath, []byte(content), 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("write a workflow file: %w", err)
	}
	return nil
}

func (c *Controller) addFinding(f *Finding) {
	c.findings = append(c.findings, f)
}
