package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// starterExclusionsTemplate seeds a new exclusions resource with common project noise.
const starterExclusionsTemplate = `{
  "exclude_dirs": [
    ".git",
    ".hg",
    ".idea",
    ".venv",
    ".vscode",
    "__pycache__",
    "build",
    "dist",
    "node_modules",
    "venv"
  ],
  "exclude_files": [
    ".DS_Store",
    "Thumbs.db"
  ]
}
`

// InitOptions controls how the starter exclusions resource is written.
type InitOptions struct {
	// DestinationPath names the file to create; empty selects DefaultExclusionsPath.
	DestinationPath string
	// Force overwrites an existing resource.
	Force bool
}

// InitializeExclusions writes the starter exclusions resource and returns the
// path it was written to. An existing resource is preserved unless Force is set.
func InitializeExclusions(options InitOptions) (string, error) {
	destinationPath := options.DestinationPath
	if destinationPath == "" {
		destinationPath = DefaultExclusionsPath()
	}
	destinationDirectory := filepath.Dir(destinationPath)
	if mkdirError := os.MkdirAll(destinationDirectory, 0o755); mkdirError != nil {
		return "", fmt.Errorf("create configuration directory %s: %w", destinationDirectory, mkdirError)
	}
	if _, statError := os.Stat(destinationPath); statError == nil {
		if !options.Force {
			return "", fmt.Errorf("exclusions file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(statError) {
		return "", fmt.Errorf("inspect exclusions path %s: %w", destinationPath, statError)
	}
	if writeError := os.WriteFile(destinationPath, []byte(starterExclusionsTemplate), 0o600); writeError != nil {
		return "", fmt.Errorf("write exclusions to %s: %w", destinationPath, writeError)
	}
	return destinationPath, nil
}
