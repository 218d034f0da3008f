package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir so it can be
// customized. An existing file is never clobbered.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (string, error) {
	path := filepath.Join(dir, ConfigurationName)
	if _, err := fsys.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
		return "", err
	}
	logger.Info("wrote default configuration", "path", path)
	return path, nil
}
