package update

import (
	"context"
	"io"
	"testing"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/bumpact/bumpact/pkg/github"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		line string
		exp  *Action
	}{
		{
			name: "unrelated",
			line: "unrelated",
		},
		{
			name: "checkout v3",
			line: "  - uses: actions/checkout@v3",
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v3",
			},
		},
		{
			name: "commit sha with comment",
			line: "  - uses: actions/checkout@8e5e7e5ab8b370d6c329ec480221332ada57f0ab # v3",
			exp: &Action{
				Name:           "actions/checkout",
				Version:        "8e5e7e5ab8b370d6c329ec480221332ada57f0ab",
				VersionComment: "v3",
			},
		},
		{
			name: "not indented",
			line: "uses: actions/checkout@v3",
		},
		{
			name: "reusable workflow",
			line: "    uses: suzuki-shunsuke/tfaction/.github/workflows/test.yaml@v1.2.0",
			exp: &Action{
				Name:    "suzuki-shunsuke/tfaction/.github/workflows/test.yaml",
				Version: "v1.2.0",
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			act := ParseAction(d.line)
			if diff := cmp.Diff(d.exp, act); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func Test_parseActionName(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		act   *Action
		exp   bool
		owner string
		repo  string
	}{
		{
			name: "owner repo",
			act: &Action{
				Name: "actions/checkout",
			},
			exp:   true,
			owner: "actions",
			repo:  "checkout",
		},
		{
			name: "local path",
			act: &Action{
				Name: "./.github/actions/foo",
			},
			exp: false,
		},
		{
			name: "docker",
			act: &Action{
				Name: "docker://alpine",
			},
			exp: false,
		},
		{
			name: "no slash",
			act: &Action{
				Name: "checkout",
			},
			exp: false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			f := parseActionName(d.act)
			if f != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, f)
			}
			if !d.exp {
				return
			}
			if d.act.RepoOwner != d.owner || d.act.RepoName != d.repo {
				t.Fatalf("wanted %s/%s, got %s/%s", d.owner, d.repo, d.act.RepoOwner, d.act.RepoName)
			}
		})
	}
}

func newTestController(cfg *config.Config, releases map[string][]string) *Controller {
	releaseResults := map[string]*ListReleasesResult{}
	for key, tags := range releases {
		arr := make([]*github.RepositoryRelease, len(tags))
		for i, tag := range tags {
			arr[i] = &github.RepositoryRelease{
				TagName: github.Ptr(tag),
			}
		}
		releaseResults[key] = &ListReleasesResult{
			Releases: arr,
			Response: &github.Response{},
		}
	}
	ctrl := New(&RepositoriesServiceImpl{
		Tags:     map[string]*ListTagsResult{},
		Releases: releaseResults,
	}, nil, nil, afero.NewMemMapFs(), nil, nil, &Param{
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	ctrl.cfg = cfg
	return ctrl
}

func TestController_parseLine(t *testing.T) { //nolint:funlen
	t.Parallel()
	releases := map[string][]string{
		"actions/checkout/0": {"v4.2.1", "v4.2", "v4", "v3.6.0", "v3"},
		"actions/cache/0":    {"v4.1.2", "v4.1", "v3.2.1"},
		"actions/stale/0":    {"v9.1.0"},
	}
	data := []struct {
		name string
		line string
		cfg  *config.Config
		exp  string
	}{
		{
			name: "unrelated line",
			line: "      - run: echo hello",
			exp:  "      - run: echo hello",
		},
		{
			name: "major pin prefers a major only candidate",
			line: "      - uses: actions/checkout@v3",
			exp:  "      - uses: actions/checkout@v4",
		},
		{
			name: "major pin falls back to major minor",
			line: "      - uses: actions/cache@v3",
			exp:  "      - uses: actions/cache@v4.1",
		},
		{
			name: "full pin targets full form",
			line: "      - uses: actions/stale@v8.0.0",
			exp:  "      - uses: actions/stale@v9.1.0",
		},
		{
			name: "up to date",
			line: "      - uses: actions/checkout@v4",
			exp:  "      - uses: actions/checkout@v4",
		},
		{
			name: "commit sha is skipped",
			line: "      - uses: actions/checkout@8e5e7e5ab8b370d6c329ec480221332ada57f0ab # v3",
			exp:  "      - uses: actions/checkout@8e5e7e5ab8b370d6c329ec480221332ada57f0ab # v3",
		},
		{
			name: "branch is skipped",
			line: "      - uses: actions/checkout@main",
			exp:  "      - uses: actions/checkout@main",
		},
		{
			name: "ignored action",
			line: "      - uses: actions/checkout@v3",
			cfg: &config.Config{
				IgnoreActions: []*config.IgnoreAction{
					{
						Name: "actions/checkout",
					},
				},
			},
			exp: "      - uses: actions/checkout@v3",
		},
		{
			name: "local action is skipped",
			line: "      - uses: ./.github/actions/foo@v1",
			exp:  "      - uses: ./.github/actions/foo@v1",
		},
	}
	ctx := context.Background()
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			cfg := d.cfg
			if cfg == nil {
				cfg = &config.Config{}
			}
			for _, ia := range cfg.IgnoreActions {
				if err := ia.Init(); err != nil {
					t.Fatal(err)
				}
			}
			ctrl := newTestController(cfg, releases)
			line, err := ctrl.parseLine(ctx, logE, d.line, "workflow.yml", 1)
			if err != nil {
				t.Fatal(err)
			}
			if line != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, line)
			}
		})
	}
}

func Test_patchLine(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		line       string
		action     *Action
		newVersion string
		exp        string
	}{
		{
			name: "simple",
			line: "  - uses: actions/checkout@v3",
			action: &Action{
				Name:    "actions/checkout",
				Version: "v3",
			},
			newVersion: "v4",
			exp:        "  - uses: actions/checkout@v4",
		},
		{
			name: "comment is preserved",
			line: "  - uses: actions/cache@v3 # cache dependencies",
			action: &Action{
				Name:    "actions/cache",
				Version: "v3",
			},
			newVersion: "v4.1",
			exp:        "  - uses: actions/cache@v4.1 # cache dependencies",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			line := patchLine(d.line, d.action, d.newVersion)
			if line != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, line)
			}
		})
	}
}
