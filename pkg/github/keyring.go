package github

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

// The token is stored under a service/name pair in the OS secret store
// (Windows Credential Manager, macOS Keychain, GNOME Keyring).
const (
	keyService = "bumpact/bumpact"
	keyName    = "GITHUB_TOKEN"
)

// TokenManager stores and removes the GitHub access token in the OS secret
// store.
type TokenManager struct{}

func NewTokenManager() *TokenManager {
	return &TokenManager{}
}

func (tm *TokenManager) SetToken(token string) error {
	if err := keyring.Set(keyService, keyName, token); err != nil {
		return fmt.Errorf("store a GitHub access token in keyring: %w", err)
	}
	return nil
}

func (tm *TokenManager) RemoveToken() error {
	if err := keyring.Delete(keyService, keyName); err != nil {
		return fmt.Errorf("delete a GitHub access token from keyring: %w", err)
	}
	return nil
}

// KeyringTokenSource is an oauth2.TokenSource reading the token from the OS
// secret store. The read is lazy and cached, so the store isn't touched
// unless an API request is actually made.
type KeyringTokenSource struct {
	logE  *logrus.Entry
	token *oauth2.Token
}

func NewKeyringTokenSource(logE *logrus.Entry) *KeyringTokenSource {
	return &KeyringTokenSource{logE: logE}
}

func (ks *KeyringTokenSource) Token() (*oauth2.Token, error) {
	if ks.token != nil {
		return ks.token, nil
	}
	ks.logE.Debug("reading a GitHub access token from keyring")
	s, err := keyring.Get(keyService, keyName)
	if err != nil {
		return nil, fmt.Errorf("read a GitHub access token from keyring: %w", err)
	}
	ks.token = &oauth2.Token{AccessToken: s}
	return ks.token, nil
}
