// config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configurable settings. It is built
// once in main and passed explicitly into the filter and walker, so
// tests can run distinct configurations side by side.
type Config struct {
	OutputSuffix       string   `toml:"output_suffix"`
	IgnoreFilename     string   `toml:"ignore_filename"`
	IgnoredNames       []string `toml:"ignored_names"`
	IgnoredDirs        []string `toml:"ignored_dirs"`
	BinaryExtensions   []string `toml:"binary_extensions"`
	TruncateExtensions []string `toml:"truncate_extensions"`
	TruncateLines      int      `toml:"truncate_lines"`
	HeaderText         *string  `toml:"header_text"`
	IncludeEmpty       *bool    `toml:"include_empty"`
}

var defaultConfig = Config{
	OutputSuffix:   ".txt",
	IgnoreFilename: ".gitignore",
	IgnoredNames: []string{
		".DS_Store", "Thumbs.db", "desktop.ini",
		"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		"poetry.lock", "Cargo.lock", "composer.lock",
	},
	IgnoredDirs: []string{
		"node_modules", "__pycache__", ".venv", "venv",
		".idea", ".vscode", "dist", "build", "target", "vendor",
		".pytest_cache", ".mypy_cache",
	},
	BinaryExtensions: []string{
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".ico",
		".pdf", ".zip", ".tar", ".gz", ".bz2", ".xz", ".7z",
		".exe", ".dll", ".so", ".dylib", ".bin", ".o", ".a",
		".pyc", ".class", ".jar",
		".woff", ".woff2", ".ttf", ".eot", ".otf",
		".mp3", ".mp4", ".wav", ".avi", ".mov",
	},
	TruncateExtensions: []string{".json", ".csv", ".svg", ".xml", ".ipynb"},
	TruncateLines:      100,
	HeaderText:         func(s string) *string { return &s }("Codebase snapshot for analysis:"),
	IncludeEmpty:       func(b bool) *bool { return &b }(false),
}

// loadConfig loads settings from a custom path if given, otherwise from
// the default location under the user config directory. A missing
// default file is not an error; a missing custom file is.
func loadConfig(customConfigPath string) (Config, error) {
	cfg := defaultConfig
	isCustomPath := customConfigPath != ""

	configFile := customConfigPath
	if !isCustomPath {
		configDir, err := os.UserConfigDir()
		if err != nil {
			slog.Warn("Could not determine user config directory. Using default settings.", "error", err)
			return cfg, nil
		}
		configFile = filepath.Join(configDir, "repocat", "config.toml")
	} else {
		abs, err := filepath.Abs(customConfigPath)
		if err != nil {
			return defaultConfig, fmt.Errorf("invalid config path '%s': %w", customConfigPath, err)
		}
		configFile = abs
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if isCustomPath {
				return defaultConfig, fmt.Errorf("specified configuration file '%s' not found", configFile)
			}
			slog.Info("No config file found, using default settings.", "path", configFile)
			return cfg, nil
		}
		return defaultConfig, fmt.Errorf("error reading config file '%s': %w", configFile, err)
	}

	slog.Info("Loading configuration.", "path", configFile)
	loadedCfg := defaultConfig
	meta, err := toml.Decode(string(content), &loadedCfg)
	if err != nil {
		return defaultConfig, fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	}
	if len(meta.Undecoded()) > 0 {
		slog.Warn("Unrecognized keys found in config file.", "path", configFile, "keys", meta.Undecoded())
	}
	cfg = loadedCfg

	// Pointer fields keep their defaults when absent from the TOML.
	if cfg.HeaderText == nil {
		cfg.HeaderText = defaultConfig.HeaderText
	}
	if cfg.IncludeEmpty == nil {
		cfg.IncludeEmpty = defaultConfig.IncludeEmpty
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = defaultConfig.OutputSuffix
	}
	if cfg.IgnoreFilename == "" {
		cfg.IgnoreFilename = defaultConfig.IgnoreFilename
	}
	if cfg.TruncateLines <= 0 {
		cfg.TruncateLines = defaultConfig.TruncateLines
	}

	slog.Debug("Configuration loaded.",
		"source", configFile,
		"output_suffix", cfg.OutputSuffix,
		"ignore_filename", cfg.IgnoreFilename,
		"truncate_lines", cfg.TruncateLines,
		"include_empty", *cfg.IncludeEmpty,
	)
	return cfg, nil
}
