package update

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/bumpact/bumpact/pkg/sarif"
	"github.com/spf13/afero"
)

func TestController_outputSARIF(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	ctrl := New(nil, nil, nil, afero.NewMemMapFs(), nil, nil, &Param{
		Format: formatSARIF,
		Stdout: stdout,
		Stderr: io.Discard,
	})
	ctrl.findings = []*Finding{
		{
			File:       ".github/workflows/test.yml",
			Line:       7,
			OldLine:    "      - uses: actions/checkout@v3",
			NewLine:    "      - uses: actions/checkout@v4",
			Action:     "actions/checkout",
			OldVersion: "v3",
			NewVersion: "v4",
		},
		{
			File:    ".github/workflows/test.yml",
			Line:    9,
			OldLine: "      - uses: actions/cache@v3",
			Message: "list versions of actions/cache: api error",
		},
	}
	if err := ctrl.outputSARIF(); err != nil {
		t.Fatal(err)
	}
	log := &sarif.Log{}
	if err := json.Unmarshal(stdout.Bytes(), log); err != nil {
		t.Fatal(err)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("wanted 1 run, got %d", len(log.Runs))
	}
	results := log.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("wanted 2 results, got %d", len(results))
	}
	if results[0].RuleID != ruleOutdatedAction {
		t.Fatalf("wanted %s, got %s", ruleOutdatedAction, results[0].RuleID)
	}
	if results[1].RuleID != ruleResolveError {
		t.Fatalf("wanted %s, got %s", ruleResolveError, results[1].RuleID)
	}
	if results[1].Level != "error" {
		t.Fatalf("wanted error, got %s", results[1].Level)
	}
}
