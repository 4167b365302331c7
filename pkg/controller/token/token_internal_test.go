package token

import (
	"errors"
	"strings"
	"testing"
)

type fakeTokenManager struct {
	token   string
	removed bool
	err     error
}

func (tm *fakeTokenManager) SetToken(token string) error {
	tm.token = token
	return tm.err
}

func (tm *fakeTokenManager) RemoveToken() error {
	tm.removed = true
	return tm.err
}

func TestController_Set(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		stdin string
		token string
		isErr bool
	}{
		{
			name:  "normal",
			stdin: "ghp_xxx\n",
			token: "ghp_xxx",
		},
		{
			name:  "trailing spaces",
			stdin: "  ghp_xxx  \n",
			token: "ghp_xxx",
		},
		{
			name:  "empty",
			stdin: "\n",
			isErr: true,
		},
		{
			name:  "no input",
			stdin: "",
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			tm := &fakeTokenManager{}
			ctrl := New(strings.NewReader(d.stdin), tm)
			err := ctrl.Set()
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tm.token != d.token {
				t.Fatalf("wanted %q, got %q", d.token, tm.token)
			}
		})
	}
}

func TestController_Remove(t *testing.T) {
	t.Parallel()
	tm := &fakeTokenManager{}
	ctrl := New(strings.NewReader(""), tm)
	if err := ctrl.Remove(); err != nil {
		t.Fatal(err)
	}
	if !tm.removed {
		t.Fatal("the token must be removed")
	}

	ctrl = New(strings.NewReader(""), &fakeTokenManager{err: errors.New("keyring error")})
	if err := ctrl.Remove(); err == nil {
		t.Fatal("error must be returned")
	}
}
