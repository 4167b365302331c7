package config

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_getConfigPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		paths []string
		exp   string
	}{
		{
			name:  "no config",
			paths: []string{},
			exp:   "",
		},
		{
			name:  "primary",
			paths: []string{".bumpact.yaml"},
			exp:   ".bumpact.yaml",
		},
		{
			name:  "github dir",
			paths: []string{".github/bumpact.yaml"},
			exp:   ".github/bumpact.yaml",
		},
		{
			name:  "both primary and others",
			paths: []string{".bumpact.yaml", ".github/bumpact.yaml"},
			exp:   ".bumpact.yaml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, path := range d.paths {
				if err := afero.WriteFile(fs, path, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := getConfigPath(fs)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, got)
			}
		})
	}
}

func TestIgnoreAction_Match(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name   string
		ia     *IgnoreAction
		action string
		ref    string
		exp    bool
	}{
		{
			name: "fixed string name",
			ia: &IgnoreAction{
				Name: "actions/checkout",
			},
			action: "actions/checkout",
			ref:    "v3",
			exp:    true,
		},
		{
			name: "fixed string name unmatch",
			ia: &IgnoreAction{
				Name: "actions/checkout",
			},
			action: "actions/cache",
			ref:    "v3",
			exp:    false,
		},
		{
			name: "regexp name",
			ia: &IgnoreAction{
				Name:       `actions/.*`,
				NameFormat: "regexp",
			},
			action: "actions/cache",
			ref:    "v3",
			exp:    true,
		},
		{
			name: "glob name",
			ia: &IgnoreAction{
				Name:       "actions/*",
				NameFormat: "glob",
			},
			action: "actions/cache",
			ref:    "v3",
			exp:    true,
		},
		{
			name: "ref unmatch",
			ia: &IgnoreAction{
				Name:       `suzuki-shunsuke/.*`,
				NameFormat: "regexp",
				Ref:        `v1\..*`,
				RefFormat:  "regexp",
			},
			action: "suzuki-shunsuke/tfcmt",
			ref:    "v2.0",
			exp:    false,
		},
		{
			name: "name and ref match",
			ia: &IgnoreAction{
				Name:       `suzuki-shunsuke/.*`,
				NameFormat: "regexp",
				Ref:        `v1\..*`,
				RefFormat:  "regexp",
			},
			action: "suzuki-shunsuke/tfcmt",
			ref:    "v1.2",
			exp:    true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if err := d.ia.Init(); err != nil {
				t.Fatal(err)
			}
			f, err := d.ia.Match(d.action, d.ref)
			if err != nil {
				t.Fatal(err)
			}
			if f != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, f)
			}
		})
	}
}
