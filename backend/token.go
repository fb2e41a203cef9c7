package backend

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// The bearer token is the only persisted client state. It lives in the
// user config dir so a restart silently restores the session.

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "slither", "token"), nil
}

func LoadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func SaveToken(tok string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return ioutil.WriteFile(path, []byte(tok), 0o600)
}

// ClearToken removes the stored token. Missing file is fine.
func ClearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
