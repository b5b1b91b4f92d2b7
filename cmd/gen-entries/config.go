package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gen-entries/cmd/gen-entries/overrides"
)

// appName names the binary; env vars, config paths and banners derive from it.
const appName = "gen-entries"

var (
	envPrefix    = strings.ToUpper(strings.ReplaceAll(appName, "-", "_"))
	envConfigDir = envPrefix + "_CONFIG_DIR"
	envOverrides = envPrefix + "_OVERRIDES"
)

// resolveConfigDir locates the directory holding the user's overrides/ layer:
// $GEN_ENTRIES_CONFIG_DIR, else $XDG_CONFIG_HOME/gen-entries, else
// ~/.config/gen-entries. The directory does not have to exist.
func resolveConfigDir() (string, error) {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveOverrideFiles returns the override files to layer over the embedded
// defaults, lowest precedence first.
// Order: configDir/overrides/*.yml → $GEN_ENTRIES_OVERRIDES → flagFiles
// With skipUser only flagFiles are returned.
func resolveOverrideFiles(flagFiles []string, skipUser bool) ([]string, error) {
	if skipUser {
		return flagFiles, nil
	}
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	files, err := globYAML(filepath.Join(configDir, "overrides"))
	if err != nil {
		return nil, err
	}
	files = append(files, splitColon(os.Getenv(envOverrides))...)
	files = append(files, flagFiles...)
	return files, nil
}

// globYAML lists the override layers in dir in file name order. Only *.yml
// and *.yaml files count; a missing dir is an empty layer.
func globYAML(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	var files []string
	for _, e := range dirEntries {
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			if !e.IsDir() {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	return files, nil
}

// splitColon turns a PATH-style $GEN_ENTRIES_OVERRIDES value into file names.
func splitColon(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ':' })
}

// loadTables merges the embedded defaults with every file in order. Later
// files win per key.
func loadTables(files []string, log *zap.Logger) (overrides.Tables, error) {
	tables := overrides.Default()
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return overrides.Tables{}, fmt.Errorf("override file %s: %w", f, err)
		}
		layer, err := overrides.Parse(data)
		if err != nil {
			return overrides.Tables{}, fmt.Errorf("override file %s: %w", f, err)
		}
		log.Debug("loaded overrides", zap.String("file", f), zap.Int("names", len(layer.Names())))
		tables = tables.Merge(layer)
	}
	return tables, nil
}
