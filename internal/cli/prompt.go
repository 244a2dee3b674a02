package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	promptMessage               = "🔹 Enter the directory to scan (or press Enter to use the current directory): "
	usingCurrentDirectoryFormat = "✅ Using current directory: %s\n"
	invalidDirectoryMessage     = "❌ Invalid directory. Please enter a valid path."

	// errorPromptClosedMessage reports input ending before a valid directory arrived.
	errorPromptClosedMessage = "input closed before a valid directory was provided"
	// errorWorkingDirectoryFormat reports a failure to resolve the working directory.
	errorWorkingDirectoryFormat = "unable to determine working directory: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a path that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"
)

// promptForRootDirectory reads candidate paths from promptInput until one
// names an existing directory, echoing guidance to promptOutput. An empty
// line selects the current working directory. The loop ends only with a
// valid directory or exhausted input.
func promptForRootDirectory(promptInput io.Reader, promptOutput io.Writer) (string, error) {
	lineScanner := bufio.NewScanner(promptInput)
	for {
		fmt.Fprint(promptOutput, promptMessage)
		if !lineScanner.Scan() {
			if scanError := lineScanner.Err(); scanError != nil {
				return "", scanError
			}
			return "", errors.New(errorPromptClosedMessage)
		}
		enteredPath := strings.TrimSpace(lineScanner.Text())
		if enteredPath == "" {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return "", fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
			}
			fmt.Fprintf(promptOutput, usingCurrentDirectoryFormat, workingDirectory)
			return workingDirectory, nil
		}
		resolvedPath, validationError := resolveAndValidateRoot(enteredPath)
		if validationError != nil {
			fmt.Fprintln(promptOutput, invalidDirectoryMessage)
			continue
		}
		return resolvedPath, nil
	}
}

// resolveAndValidateRoot converts inputPath to absolute form and verifies
// that it names an existing directory.
func resolveAndValidateRoot(inputPath string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	pathInformation, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return "", fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return "", fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !pathInformation.IsDir() {
		return "", fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return cleanPath, nil
}
