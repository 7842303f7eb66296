// ABOUTME: Standard filesystem paths for spinveil configuration
// ABOUTME: Resolves ~/.spinveil/ for global and .spinveil/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".spinveil"
	projectDirName = ".spinveil"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.spinveil/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.spinveil/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// GlobalConfigFileIn returns the global config file path under home.
func GlobalConfigFileIn(home string) string {
	return filepath.Join(home, globalDirName, configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
