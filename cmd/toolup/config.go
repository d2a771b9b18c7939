package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// defaults that apply when neither a flag nor the config file says otherwise.
type runDefaults struct {
	ToolsDir string
	Shell    string // "" means detect from $SHELL
}

// toolup config.toml key mapping.
type fileConfig struct {
	ToolsDir string `toml:"tools_dir"`
	Shell    string `toml:"shell"`
}

// defaultConfigPath returns ~/.config/toolup/config.toml, or "" when the home
// directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "toolup", "config.toml")
}

// loadDefaults overlays the optional config file onto the built-in defaults.
// A missing file is not an error; a malformed one is.
func loadDefaults(path string) (runDefaults, error) {
	cfg := runDefaults{ToolsDir: "~/tools"}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load toolup config: %w", err)
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, fmt.Errorf("load toolup config: %w", err)
	}
	if meta.IsDefined("tools_dir") {
		cfg.ToolsDir = strings.TrimSpace(raw.ToolsDir)
	}
	if meta.IsDefined("shell") {
		cfg.Shell = strings.TrimSpace(raw.Shell)
	}
	return cfg, nil
}
