package config_test

import (
	"testing"

	"github.com/bumpact/bumpact/pkg/config"
	"github.com/spf13/afero"
)

func TestReader_Read(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		path    string
		content string
		isErr   bool
		files   int
		ignores int
	}{
		{
			name: "no config",
			path: "",
		},
		{
			name: "valid",
			path: ".bumpact.yaml",
			content: `version: 1
files:
  - pattern: .github/workflows/*.yml
ignore_actions:
  - name: actions/checkout
  - name: suzuki-shunsuke/.*
    name_format: regexp
    ref: v1\..*
    ref_format: regexp
`,
			files:   1,
			ignores: 2,
		},
		{
			name: "broken yaml",
			path: ".bumpact.yaml",
			content: `files:
	- pattern
`,
			isErr: true,
		},
		{
			name: "invalid ignore_action",
			path: ".bumpact.yaml",
			content: `ignore_actions:
  - ref: v1
`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.path != "" {
				if err := afero.WriteFile(fs, d.path, []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, d.path)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if len(cfg.Files) != d.files {
				t.Fatalf("wanted %d files, got %d", d.files, len(cfg.Files))
			}
			if len(cfg.IgnoreActions) != d.ignores {
				t.Fatalf("wanted %d ignore_actions, got %d", d.ignores, len(cfg.IgnoreActions))
			}
		})
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".github/bumpact.yaml", []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	finder := config.NewFinder(fs)
	p, err := finder.Find("")
	if err != nil {
		t.Fatal(err)
	}
	if p != ".github/bumpact.yaml" {
		t.Fatalf("wanted .github/bumpact.yaml, got %s", p)
	}
	p, err = finder.Find("foo.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if p != "foo.yaml" {
		t.Fatalf("wanted foo.yaml, got %s", p)
	}
}
