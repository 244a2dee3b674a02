package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
	gitDirectoryName   = ".git"
)

// GetApplicationVersion resolves the application version from Go build
// information, falling back to git describe when running from a source tree.
func GetApplicationVersion() string {
	buildInformation, buildInformationAvailable := debug.ReadBuildInfo()
	if buildInformationAvailable && buildInformation.Main.Version != "" && buildInformation.Main.Version != developmentVersion {
		return buildInformation.Main.Version
	}

	repositoryRoot, repositoryRootError := findRepositoryRoot(".")
	if repositoryRootError == nil {
		if describedVersion := gitDescribe(repositoryRoot, "--tags", "--exact-match"); describedVersion != "" {
			return describedVersion
		}
		if describedVersion := gitDescribe(repositoryRoot, "--tags", "--long", "--dirty"); describedVersion != "" {
			return describedVersion
		}
	}

	return unknownVersion
}

// gitDescribe runs git describe with the provided arguments inside repositoryRoot
// and returns the trimmed output, or an empty string on failure.
func gitDescribe(repositoryRoot string, describeArguments ...string) string {
	commandArguments := append([]string{"describe"}, describeArguments...)
	// #nosec G204
	describeCommand := exec.Command("git", commandArguments...)
	describeCommand.Dir = repositoryRoot
	describeOutput, describeError := describeCommand.Output()
	if describeError != nil {
		return ""
	}
	return strings.TrimSpace(string(describeOutput))
}

// findRepositoryRoot walks upward from startDirectory until it locates a
// directory containing a .git folder.
func findRepositoryRoot(startDirectory string) (string, error) {
	absoluteStartDirectory, absolutePathError := filepath.Abs(startDirectory)
	if absolutePathError != nil {
		return "", fmt.Errorf("resolve absolute path for %s: %w", startDirectory, absolutePathError)
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitPath := filepath.Join(currentDirectory, gitDirectoryName)
		gitPathInformation, gitStatError := os.Stat(gitPath)
		if gitStatError == nil && gitPathInformation.IsDir() {
			return currentDirectory, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return "", fmt.Errorf("no .git directory found in or above %s", absoluteStartDirectory)
}
