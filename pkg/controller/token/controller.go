// Package token manages the GitHub access token in the OS secret store
// (Windows Credential Manager, macOS Keychain, or GNOME Keyring).
package token

import "io"

type Controller struct {
	stdin        io.Reader
	tokenManager TokenManager
}

type TokenManager interface {
	SetToken(token string) error
	RemoveToken() error
}

func New(stdin io.Reader, tokenManager TokenManager) *Controller {
	return &Controller{
		stdin:        stdin,
		tokenManager: tokenManager,
	}
}
