package update

import (
	"encoding/json"
	"fmt"

	"github.com/bumpact/bumpact/pkg/sarif"
)

const (
	formatSARIF = "sarif"

	ruleOutdatedAction = "outdated-action"
	ruleResolveError   = "resolve-error"
)

// outputSARIF writes the findings of the pass as a SARIF report to stdout.
func (c *Controller) outputSARIF() error {
	log := sarif.Log{
		Schema:  sarif.SchemaURI,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "bumpact",
						InformationURI: "https://github.com/bumpact/bumpact",
						Rules: []sarif.Rule{
							{
								ID: ruleOutdatedAction,
								ShortDescription: sarif.Message{
									Text: "A newer version of the GitHub Action is available",
								},
								DefaultConfiguration: &sarif.ReportingConfiguration{
									Level: "warning",
								},
							},
							{
								ID: ruleResolveError,
								ShortDescription: sarif.Message{
									Text: "Failed to resolve an action reference",
								},
								DefaultConfiguration: &sarif.ReportingConfiguration{
									Level: "error",
								},
							},
						},
					},
				},
				Results: c.buildSARIFResults(),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func (c *Controller) buildSARIFResults() []sarif.Result {
	results := make([]sarif.Result, 0, len(c.findings))
	for _, f := range c.findings {
		ruleID := ruleOutdatedAction
		level := "warning"
		var msg string
		if f.Message != "" {
			ruleID = ruleResolveError
			level = "error"
			msg = f.Message
		} else {
			msg = fmt.Sprintf("%s is outdated: %s -> %s", f.Action, f.OldVersion, f.NewVersion)
		}

		results = append(results, sarif.Result{
			RuleID:  ruleID,
			Level:   level,
			Message: sarif.Message{Text: msg},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.File,
						},
						Region: sarif.Region{
							StartLine: f.Line,
						},
					},
				},
			},
		})
	}
	return results
}
