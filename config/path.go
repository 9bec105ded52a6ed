// Package config loads client settings from a YAML file.
//
// A config directory holds a single config.yaml:
//
//	api_key: $2a$10$...
//	base_url: https://api.curseforge.com
//	log_level: debug
//
// Every key is optional in the file; Validate reports a configuration that
// cannot build a client.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DonovanMods/cfapi/apierr"
)

func invalidPath(reason string) error {
	return fmt.Errorf("%w: config path %s", apierr.ErrInvalidConfig, reason)
}

// ParseConfigPath checks that path names an existing .yaml or .yml file given
// as an absolute path without ".." elements, and returns it cleaned. Every
// failure wraps apierr.ErrInvalidConfig.
func ParseConfigPath(path string) (string, error) {
	switch {
	case path == "":
		return "", invalidPath("is empty")
	case !filepath.IsAbs(path):
		return "", invalidPath("must be absolute")
	case strings.Contains(path, ".."):
		return "", invalidPath("contains parent traversal")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return "", invalidPath("must have a .yaml or .yml extension")
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", invalidPath("does not exist")
	}
	if err != nil {
		return "", fmt.Errorf("checking config path: %w", err)
	}
	if info.IsDir() {
		return "", invalidPath("is a directory")
	}

	return filepath.Clean(path), nil
}
