package update

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bumpact/bumpact/pkg/version"
	"github.com/sirupsen/logrus"
)

var usesPattern = regexp.MustCompile(`^ +(?:- )?uses: +([^ @]+)@([^ #]+)(?: +# *(.*))?$`)

// Action is one owner/repo@version reference found in a workflow file.
type Action struct {
	Name           string
	Version        string
	VersionComment string
	RepoOwner      string
	RepoName       string
}

// parseLine resolves one workflow line.
// It returns the rewritten line when a newer version exists, the original
// line when there is nothing to do, and an error when the reference can't be
// resolved.
func (c *Controller) parseLine(ctx context.Context, logE *logrus.Entry, line, filePath string, lineNumber int) (string, error) { //nolint:cyclop
	action := ParseAction(line)
	if action == nil {
		// Not an action reference.
		logE.WithField("line", line).Debug("unmatch")
		return line, nil
	}
	if !parseActionName(action) {
		logE.WithField("line", line).Debug("ignore the line")
		return line, nil
	}

	ignored, err := c.ignoreAction(action)
	if err != nil {
		return "", err
	}
	if ignored {
		logE.WithFields(logrus.Fields{
			"action": action.Name,
		}).Debug("ignore the action")
		return line, nil
	}

	current, err := version.Parse(action.Version)
	if err != nil {
		// Commit SHAs, branch names, and other refs outside the version
		// grammar can't be updated by version comparison. The reference is
		// skipped; the rest of the file is still processed.
		logE.WithFields(logrus.Fields{
			"action":  action.Name,
			"version": action.Version,
		}).WithError(err).Debug("skip a reference whose version isn't a version tag")
		return line, nil
	}

	catalog, err := c.listVersions(ctx, logE, action.RepoOwner, action.RepoName, current)
	if err != nil {
		return "", fmt.Errorf("list versions of %s: %w", action.Name, err)
	}
	result := version.Resolve(current, catalog)
	if !result.IsUpdate() {
		logE.WithField("action", action.Name).Debug("the action is up to date")
		return line, nil
	}
	// resolve already guarantees a strict major bump. The comparator is the
	// final gate before any edit is applied.
	if !version.IsNewer(current, result.Target) {
		logE.WithFields(logrus.Fields{
			"action":  action.Name,
			"current": current.String(),
			"target":  result.Target.String(),
		}).Warn("the resolved target isn't newer than the current version")
		return line, nil
	}

	newLine := patchLine(line, action, result.Version())
	c.addFinding(&Finding{
		File:       filePath,
		Line:       lineNumber,
		OldLine:    line,
		NewLine:    newLine,
		Action:     action.Name,
		OldVersion: current.String(),
		NewVersion: result.Version(),
	})
	if c.param.Diff {
		c.logger.Output("outdated action", &Line{File: filePath, Number: lineNumber, Line: line}, newLine)
	}
	return newLine, nil
}

// ParseAction extracts an action reference from a line.
// It returns nil if the line doesn't reference an action.
func ParseAction(line string) *Action {
	matches := usesPattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}
	return &Action{
		Name:           matches[1],
		Version:        matches[2], // commit SHA, branch, v3, v3.0.0
		VersionComment: matches[3],
	}
}

// parseActionName extracts the repository owner and name.
// Local paths and Docker references can't be updated via the GitHub API.
func parseActionName(action *Action) bool {
	if strings.HasPrefix(action.Name, "./") || strings.HasPrefix(action.Name, "docker://") {
		return false
	}
	a := strings.Split(action.Name, "/")
	if len(a) < 2 { //nolint:mnd
		return false
	}
	action.RepoOwner = a[0]
	action.RepoName = a[1]
	return true
}

func (c *Controller) ignoreAction(action *Action) (bool, error) {
	for _, ia := range c.cfg.IgnoreActions {
		f, err := ia.Match(action.Name, action.Version)
		if err != nil {
			return false, fmt.Errorf("match an ignored action: %w", err)
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

// patchLine replaces only the version, keeping indentation, quotes, and
// comments intact.
func patchLine(line string, action *Action, newVersion string) string {
	return strings.Replace(line, "@"+action.Version, "@"+newVersion, 1)
}
