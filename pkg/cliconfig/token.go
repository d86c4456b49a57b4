package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultTokenFileName is the file name for a stored backend token.
const DefaultTokenFileName = "token"

// GetTokenFilePath returns the default path for the token file.
// Location: $XDG_DATA_HOME/mcpconsole/token (or ~/.local/share/mcpconsole/token)
func GetTokenFilePath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, GlobalConfigDir, DefaultTokenFileName)
}

// LoadTokenFromPath loads a token from a file. A missing file is not an
// error and yields "".
func LoadTokenFromPath(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ResolveToken returns the configured token, falling back to the token
// file when no other source set one.
func ResolveToken(cfg *CLIConfig) string {
	if cfg.Token != "" {
		return cfg.Token
	}
	if tok, err := LoadTokenFromPath(GetTokenFilePath()); err == nil {
		return tok
	}
	return ""
}
