package cli

import (
	"errors"
	"os"
	"strings"
)

// loadToken reads the cached session token. A missing cache file is not an
// error; it just means nobody is logged in.
func loadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// saveToken caches the session token, readable by the owner only.
func saveToken(path, token string) error {
	return os.WriteFile(path, []byte(token), 0o600)
}

// clearToken removes the cache file. Clearing an absent file is fine.
func clearToken(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
