package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the platform-specific configuration directory.
// Linux/Mac: ~/.config/convo
// Windows: C:\Users\username\.config\convo
func Dir() string {
	if runtime.GOOS == "windows" {
		userProfile := os.Getenv("USERPROFILE")
		return filepath.Join(userProfile, ".config", "convo")
	}

	home := os.Getenv("HOME")
	return filepath.Join(home, ".config", "convo")
}

// Path returns the location of the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// WriteTemplate creates the config directory and writes the commented
// template, refusing to clobber an existing file.
func WriteTemplate() (string, error) {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return "", err
	}
	path := Path()
	if FileExists(path) {
		return path, nil
	}
	// 0600: the file holds the API credential.
	if err := os.WriteFile(path, []byte(Template), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
