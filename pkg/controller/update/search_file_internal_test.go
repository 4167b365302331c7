package update

import (
	"io"
	"testing"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestController_searchFilesByConfig(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		files []*config.File
		paths []string
		exp   []string
	}{
		{
			name: "regexp pattern",
			files: []*config.File{
				{
					Pattern:       `^\.github/workflows/.*\.ya?ml$`,
					PatternFormat: "regexp",
				},
			},
			paths: []string{
				".github/workflows/test.yml",
				".github/workflows/release.yaml",
				".github/dependabot.yml",
				"README.md",
			},
			exp: []string{
				".github/workflows/release.yaml",
				".github/workflows/test.yml",
			},
		},
		{
			name: "glob pattern",
			files: []*config.File{
				{
					Pattern: ".github/workflows/*.yml",
				},
			},
			paths: []string{
				".github/workflows/test.yml",
				"action.yml",
			},
			exp: []string{
				".github/workflows/test.yml",
			},
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			for _, file := range d.files {
				if err := file.Init(); err != nil {
					t.Fatal(err)
				}
			}
			fs := afero.NewMemMapFs()
			for _, p := range d.paths {
				if err := afero.WriteFile(fs, p, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			ctrl := New(nil, nil, nil, fs, nil, nil, &Param{
				PWD:    ".",
				Stdout: io.Discard,
				Stderr: io.Discard,
			})
			ctrl.cfg = &config.Config{
				Files: d.files,
			}
			files, err := ctrl.searchFilesByConfig(logE)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, files); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
