package initcmd

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := New(fs)
	if err := ctrl.Init(".bumpact.yaml"); err != nil {
		t.Fatal(err)
	}
	content, err := afero.ReadFile(fs, ".bumpact.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "version: 1") {
		t.Fatal("the template must contain the schema version")
	}

	// An existing file must not be overwritten.
	if err := afero.WriteFile(fs, ".bumpact.yaml", []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Init(".bumpact.yaml"); err != nil {
		t.Fatal(err)
	}
	content, err = afero.ReadFile(fs, ".bumpact.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "version: 1\n" {
		t.Fatal("an existing configuration file must not be overwritten")
	}
}
