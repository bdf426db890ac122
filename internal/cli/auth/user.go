package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// lastEmailPath returns the full path to the file storing last successful sign-in email.
func lastEmailPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "DrivenPass")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(p, "last_email"), nil
}

// SaveLastEmail stores the provided email as the current user context for the CLI.
func SaveLastEmail(email string) error {
	if email == "" {
		return errors.New("empty email")
	}
	p, err := lastEmailPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(email), 0o600)
}

// LoadLastEmail returns last stored email.
func LoadLastEmail() (string, error) {
	p, err := lastEmailPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("no stored email")
	}
	// Trim simple trailing whitespace
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return string(b), nil
}
