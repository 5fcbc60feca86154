package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// APIKeyEnv takes precedence over the stored key.
const APIKeyEnv = "LINEAR_API_KEY"

// ErrNotAuthenticated is returned when no API key is configured.
var ErrNotAuthenticated = errors.New("not authenticated")

// Credentials is the content of config.toml.
type Credentials struct {
	APIKey string `toml:"api_key"`
}

// CredentialsPath returns the location of config.toml.
func CredentialsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadCredentials reads config.toml. A missing file yields empty credentials.
func LoadCredentials() (*Credentials, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if _, err := toml.DecodeFile(path, &creds); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &creds, nil
}

// SaveCredentials writes config.toml readable only by the owner.
func SaveCredentials(creds *Credentials) (string, error) {
	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600) // #nosec G304 - path under the config dir
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	// An existing file keeps its old mode through O_TRUNC.
	if err := os.Chmod(path, 0600); err != nil {
		return "", fmt.Errorf("failed to restrict %s: %w", path, err)
	}
	if err := toml.NewEncoder(file).Encode(creds); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// APIKey returns the key from LINEAR_API_KEY, else from config.toml.
func APIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, nil
	}
	creds, err := LoadCredentials()
	if err != nil {
		return "", err
	}
	if key := strings.TrimSpace(creds.APIKey); key != "" {
		return key, nil
	}
	return "", ErrNotAuthenticated
}
