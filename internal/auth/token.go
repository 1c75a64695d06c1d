// Package auth resolves the Toggl API token. The environment variable wins;
// the OS keyring is the fallback so the token survives across shells.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	// EnvToken is the environment variable checked first.
	EnvToken = "TOGGL_API_TOKEN"

	serviceName = "togglcli"
	keyName     = "api-token"
)

// ErrNoToken means no credential could be found anywhere.
var ErrNoToken = errors.New("no API token found: set " + EnvToken + " or run `togglcli token set`")

// Token returns the API token from the environment or the OS keyring.
func Token() (string, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}

	token, err := keyring.Get(serviceName, keyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token from keyring: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// StoreToken saves the token in the OS keyring.
func StoreToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(serviceName, keyName, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// ClearToken removes the token from the OS keyring.
func ClearToken() error {
	err := keyring.Delete(serviceName, keyName)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove token from keyring: %w", err)
	}
	return nil
}

// PromptToken asks for the token on the terminal without echo.
func PromptToken() (string, error) {
	fmt.Print("Enter your Toggl API token: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", errors.New("token cannot be empty")
	}
	return token, nil
}
