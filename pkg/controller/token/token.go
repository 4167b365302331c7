package token

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// Set stores a GitHub access token in the secret store.
// The token is read from the first line of stdin so it doesn't leak into the
// shell history.
func (c *Controller) Set() error {
	scanner := bufio.NewScanner(c.stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read a GitHub access token from stdin: %w", err)
		}
		return errors.New("a GitHub access token must be passed via stdin")
	}
	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return errors.New("a GitHub access token must not be empty")
	}
	if err := c.tokenManager.SetToken(token); err != nil {
		return fmt.Errorf("set a GitHub access token in the secret store: %w", err)
	}
	return nil
}

// Remove deletes the GitHub access token from the secret store.
func (c *Controller) Remove() error {
	if err := c.tokenManager.RemoveToken(); err != nil {
		return fmt.Errorf("remove a GitHub access token from the secret store: %w", err)
	}
	return nil
}
